package game

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions(t *testing.T) {
	t.Run("large directory yields five unique options with the correct name", func(t *testing.T) {
		directory := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace"}

		options := BuildOptions("Bob", directory)

		require.Len(t, options, OptionCount)
		assert.Contains(t, options, "Bob")

		seen := make(map[string]struct{})
		for _, o := range options {
			_, dup := seen[o]
			assert.False(t, dup, "duplicate option %q", o)
			seen[o] = struct{}{}
		}
	})

	t.Run("correct name never appears twice", func(t *testing.T) {
		directory := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}

		options := BuildOptions("Alice", directory)

		count := 0
		for _, o := range options {
			if o == "Alice" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("small directory is padded with placeholders", func(t *testing.T) {
		directory := []string{"Alice", "Bob", "Carol"}

		options := BuildOptions("Dana", directory)

		require.Len(t, options, OptionCount)
		assert.Contains(t, options, "Dana")
		assert.Contains(t, options, "Alice")
		assert.Contains(t, options, "Bob")
		assert.Contains(t, options, "Carol")

		padded := 0
		for _, o := range options {
			if strings.HasPrefix(o, UnknownName) {
				padded++
			}
		}
		assert.Equal(t, 1, padded)
	})

	t.Run("empty directory yields all placeholders plus the correct name", func(t *testing.T) {
		options := BuildOptions("Rex", nil)

		require.Len(t, options, OptionCount)
		assert.Contains(t, options, "Rex")
	})

	t.Run("directory duplicates and empty entries are ignored", func(t *testing.T) {
		directory := []string{"Alice", "Alice", "", "Bob", "Bob"}

		options := BuildOptions("Rex", directory)

		require.Len(t, options, OptionCount)

		seen := make(map[string]struct{})
		for _, o := range options {
			_, dup := seen[o]
			assert.False(t, dup, "duplicate option %q", o)
			seen[o] = struct{}{}
		}
	})
}

func TestSession_Submit(t *testing.T) {
	directory := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}

	t.Run("correct first guess reveals immediately", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		res, err := sess.Submit("Bob")
		require.NoError(t, err)

		assert.True(t, res.Correct)
		assert.True(t, res.Revealed)
		assert.Equal(t, "Bob", res.CorrectName)
		assert.Equal(t, DefaultAttempts-1, res.AttemptsLeft)
		assert.Equal(t, StateRevealed, sess.State())
	})

	t.Run("wrong guess returns to ready with one attempt spent", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		res, err := sess.Submit("Alice")
		require.NoError(t, err)

		assert.False(t, res.Correct)
		assert.False(t, res.Revealed)
		assert.Empty(t, res.CorrectName)
		assert.Equal(t, DefaultAttempts-1, res.AttemptsLeft)
		assert.Equal(t, StateReady, sess.State())
	})

	t.Run("exhausting attempts reveals the correct name", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		var res Result
		var err error
		for i := 0; i < DefaultAttempts; i++ {
			res, err = sess.Submit("Alice")
			require.NoError(t, err)
		}

		assert.False(t, res.Correct)
		assert.True(t, res.Revealed)
		assert.Equal(t, "Bob", res.CorrectName)
		assert.Equal(t, 0, res.AttemptsLeft)
		assert.Equal(t, StateRevealed, sess.State())
		assert.Equal(t, []string{"Alice", "Alice", "Alice"}, sess.Guesses())
	})

	t.Run("submit after reveal is rejected", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		_, err := sess.Submit("Bob")
		require.NoError(t, err)

		_, err = sess.Submit("Alice")
		assert.ErrorIs(t, err, ErrRevealed)
	})

	t.Run("empty selection is rejected without spending an attempt", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		_, err := sess.Submit("")
		assert.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, DefaultAttempts, sess.AttemptsLeft())
	})

	t.Run("correct guess on the last attempt still wins", func(t *testing.T) {
		sess := NewSession("Bob", directory)

		_, err := sess.Submit("Alice")
		require.NoError(t, err)
		_, err = sess.Submit("Carol")
		require.NoError(t, err)

		res, err := sess.Submit("Bob")
		require.NoError(t, err)

		assert.True(t, res.Correct)
		assert.True(t, res.Revealed)
		assert.Equal(t, 0, res.AttemptsLeft)
	})
}

func TestSession_UnknownName(t *testing.T) {
	sess := NewSession("", []string{"Alice", "Bob"})

	res, err := sess.Submit(UnknownName)
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, UnknownName, res.CorrectName)
}

func TestSessionStore(t *testing.T) {
	directory := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}

	t.Run("reopen replaces the session and resets attempts", func(t *testing.T) {
		store := NewSessionStore(time.Minute)

		first := store.Open("user:item", "Bob", directory)
		_, err := first.Submit("Alice")
		require.NoError(t, err)
		require.Equal(t, DefaultAttempts-1, first.AttemptsLeft())

		second := store.Open("user:item", "Bob", directory)
		assert.NotSame(t, first, second)
		assert.Equal(t, DefaultAttempts, second.AttemptsLeft())

		got, ok := store.Get("user:item")
		require.True(t, ok)
		assert.Same(t, second, got)
	})

	t.Run("missing key", func(t *testing.T) {
		store := NewSessionStore(time.Minute)

		_, ok := store.Get("absent")
		assert.False(t, ok)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		store := NewSessionStore(time.Minute)

		store.Open("k", "Bob", directory)
		store.Delete("k")

		_, ok := store.Get("k")
		assert.False(t, ok)
	})
}
