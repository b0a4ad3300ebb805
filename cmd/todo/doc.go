// The todo program is an interactive task list for the terminal. It takes no arguments: it shows a menu on
// standard output and reads choices from standard input until "Save and quit" is chosen.
//
// Tasks are kept in todo.json in the working directory. If a file named todo.toml exists in the working
// directory, it can change that path and how much gets logged to standard error:
//
//	file = "todo.json"
//	log_level = "debug"
//
// A missing or unreadable todo.json just means starting with no tasks. Failing to save on exit, on the other
// hand, is fatal: the program reports the cause and exits with a non-zero status.
package main // import "github.com/kf5131/todo/cmd/todo"
