// The todo package contains a small task list that lives in memory and is persisted as a single JSON document
// between runs, plus the interactive session that drives it from a terminal. The only consumer at the time of
// writing is the program in the cmd/todo subdirectory.
//
// Tasks have no identity other than their position in the list, which is also the order they were added in.
// Positions shown to the user are 1-based, positions passed to List methods are 0-based.
//
// The document on disk looks like this:
//
//	{"tasks":[{"description":"Buy milk","completed":true},{"description":"Walk dog","completed":false}]}
//
// Load is strict about that shape, while LoadOrEmpty turns any load failure into an empty list, which is what a
// fresh session wants. Save overwrites the whole file in one write; there is no protection against two sessions
// using the same file, the last one to save wins.
package todo // import "github.com/kf5131/todo"
