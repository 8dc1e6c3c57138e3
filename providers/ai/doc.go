// Package ai defines the boundary to the language-model collaborator: a
// synchronous [Provider] interface plus the chat request/response structures
// exchanged with it. The advisory core treats the model call as a black box
// — prompt text in, response text out, or a transport failure — so this
// package carries no recovery or validation logic of its own.
package ai
