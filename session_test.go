package todo_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kf5131/todo"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menu = "\n=== Todo List Manager ===\n1. Add task\n2. List tasks\n3. Toggle task status\n4. Save and quit\nChoose an option: "

// runSession runs a session over list with the given input and returns what it printed and the error from Run.
func runSession(t *testing.T, list *todo.List, pathname string, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	s, err := todo.NewSession(list, pathname,
		todo.WithInput(strings.NewReader(input)),
		todo.WithOutput(&out),
		todo.WithLogEntry(log.NewEntry(logger)))
	require.Nil(t, err)
	err = s.Run()
	return out.String(), err
}

func TestSessionEndToEnd(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "todo.json")

	out, err := runSession(t, todo.LoadOrEmpty(pathname), pathname,
		"1\nBuy milk\n1\nWalk dog\n3\n1\n2\n4\n")
	require.Nil(t, err)
	expected := menu + "Enter task description: " +
		menu + "Enter task description: " +
		menu + "Enter task number to toggle: " +
		menu + "1. [x] Buy milk\n2. [ ] Walk dog\n" +
		menu
	assert.Equal(t, expected, out)

	out, err = runSession(t, todo.LoadOrEmpty(pathname), pathname, "2\n4\n")
	require.Nil(t, err)
	assert.Equal(t, menu+"1. [x] Buy milk\n2. [ ] Walk dog\n"+menu, out)
}

func TestSessionInvalidOption(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "todo.json")
	out, err := runSession(t, todo.NewList(), pathname, "5\n\nadd\n 4 \n")
	require.Nil(t, err)
	invalid := menu + "Invalid option!\n"
	assert.Equal(t, invalid+invalid+invalid+menu, out)
}

func TestSessionTrimsInput(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "todo.json")
	list := todo.NewList()
	_, err := runSession(t, list, pathname, " 1 \n\t Buy milk  \r\n1\n\n3\n 1 \n4\n")
	require.Nil(t, err)
	assert.Equal(t, []todo.Task{
		{Description: "Buy milk", Completed: true},
		{Description: ""},
	}, list.Tasks())
}

func TestSessionIgnoresBadTaskNumbers(t *testing.T) {
	testCases := []string{"", "0", "-1", "3", "one", "1.5", "99999999999999999999999"}
	for _, answer := range testCases {
		t.Run(answer, func(t *testing.T) {
			pathname := filepath.Join(t.TempDir(), "todo.json")
			list := todo.NewList()
			list.Add("a")
			list.Add("b")
			out, err := runSession(t, list, pathname, "3\n"+answer+"\n4\n")
			require.Nil(t, err)
			assert.Equal(t, menu+"Enter task number to toggle: "+menu, out)
			assert.Equal(t, []todo.Task{{Description: "a"}, {Description: "b"}}, list.Tasks())
		})
	}
}

func TestSessionListEmpty(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "todo.json")
	out, err := runSession(t, todo.NewList(), pathname, "2\n4\n")
	require.Nil(t, err)
	assert.Equal(t, menu+menu, out)
}

func TestSessionInputClosed(t *testing.T) {
	testCases := []string{
		"",
		"1\nBuy milk\n",
		"1\n",
		"3\n",
	}
	for _, input := range testCases {
		t.Run("", func(t *testing.T) {
			pathname := filepath.Join(t.TempDir(), "todo.json")
			_, err := runSession(t, todo.NewList(), pathname, input)
			assert.True(t, errors.Is(err, todo.ErrInputClosed))
			_, err = todo.Load(pathname)
			assert.NotNil(t, err, "nothing should have been saved")
		})
	}
}

func TestSessionLastLineWithoutNewline(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "todo.json")
	_, err := runSession(t, todo.NewList(), pathname, "1\nBuy milk\n4")
	require.Nil(t, err)
	l, err := todo.Load(pathname)
	require.Nil(t, err)
	assert.Equal(t, []todo.Task{{Description: "Buy milk"}}, l.Tasks())
}

func TestSessionSaveError(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "missing", "todo.json")
	list := todo.NewList()
	list.Add("a")
	_, err := runSession(t, list, pathname, "4\n2\n")
	require.NotNil(t, err)
	assert.False(t, errors.Is(err, todo.ErrInputClosed))
}

func TestNewSessionNilLogEntry(t *testing.T) {
	s, err := todo.NewSession(todo.NewList(), "todo.json", todo.WithLogEntry(nil))
	assert.Nil(t, s)
	assert.NotNil(t, err)
}

func TestNewSessionNilList(t *testing.T) {
	s, err := todo.NewSession(nil, "todo.json")
	require.Nil(t, err)
	require.NotNil(t, s.List())
	assert.Equal(t, 0, s.List().Len())
}
