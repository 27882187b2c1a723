package scripts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAppendsVersion(t *testing.T) {
	s := &Script{
		HookContent:    "hook v1",
		OutlineContent: "outline v1",
		ScriptContent:  "script v1",
		NotesContent:   "notes v1",
	}

	v := s.Snapshot("before rewrite")
	require.Len(t, s.Versions, 1)
	assert.Equal(t, "before rewrite", v.Label)
	assert.Equal(t, "hook v1", v.HookContent)
	assert.False(t, v.Timestamp.IsZero())

	s.ScriptContent = "script v2"
	s.Snapshot("after rewrite")
	require.Len(t, s.Versions, 2)
	assert.Equal(t, "script v1", s.Versions[0].ScriptContent)
	assert.Equal(t, "script v2", s.Versions[1].ScriptContent)
}

func TestRestoreOverwritesContentOnly(t *testing.T) {
	s := &Script{ScriptContent: "script v1", NotesContent: "notes v1"}
	s.Snapshot("v1")

	s.ScriptContent = "script v2"
	s.NotesContent = "notes v2"
	s.Snapshot("v2")

	s.Restore(s.Versions[0])
	assert.Equal(t, "script v1", s.ScriptContent)
	assert.Equal(t, "notes v1", s.NotesContent)
	// Restoring does not rewrite history.
	require.Len(t, s.Versions, 2)
}

func TestStageValid(t *testing.T) {
	for _, stage := range Stages {
		assert.True(t, stage.Valid())
	}
	assert.False(t, Stage("archived").Valid())
	assert.False(t, Stage("").Valid())
}
