package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	require.Equal(t, TaskStatusNotStarted, NormalizeStatus("not_started"))
	require.Equal(t, TaskStatusInProgress, NormalizeStatus("in_progress"))

	// Canonical spellings pass through untouched.
	require.Equal(t, TaskStatusNotStarted, NormalizeStatus(TaskStatusNotStarted))
	require.Equal(t, TaskStatusInProgress, NormalizeStatus(TaskStatusInProgress))
	require.Equal(t, TaskStatusCompleted, NormalizeStatus(TaskStatusCompleted))

	// Unknown values are preserved so they surface loudly downstream.
	require.Equal(t, TaskStatus("archived"), NormalizeStatus("archived"))
}

func TestTaskStatus_IsValid(t *testing.T) {
	require.True(t, TaskStatusNotStarted.IsValid())
	require.True(t, TaskStatusInProgress.IsValid())
	require.True(t, TaskStatusCompleted.IsValid())

	require.False(t, TaskStatus("not_started").IsValid())
	require.False(t, TaskStatus("").IsValid())
	require.False(t, TaskStatus("done").IsValid())
}

func TestTaskStatus_Next(t *testing.T) {
	require.Equal(t, TaskStatusInProgress, TaskStatusNotStarted.Next())
	require.Equal(t, TaskStatusCompleted, TaskStatusInProgress.Next())
	require.Equal(t, TaskStatusNotStarted, TaskStatusCompleted.Next())

	// Legacy spellings toggle through the same cycle.
	require.Equal(t, TaskStatusCompleted, TaskStatus("in_progress").Next())

	// Unknown statuses restart the cycle.
	require.Equal(t, TaskStatusNotStarted, TaskStatus("archived").Next())
}

func TestTaskStatus_Label(t *testing.T) {
	require.Equal(t, "Not Started", TaskStatusNotStarted.Label())
	require.Equal(t, "In Progress", TaskStatus("in_progress").Label())
	require.Equal(t, "Completed", TaskStatusCompleted.Label())
	require.Equal(t, "archived", TaskStatus("archived").Label())
}

func TestPriority(t *testing.T) {
	require.True(t, PriorityLow.IsValid())
	require.True(t, PriorityMedium.IsValid())
	require.True(t, PriorityHigh.IsValid())
	require.False(t, Priority("urgent").IsValid())

	require.Equal(t, "High", PriorityHigh.Label())
	require.Equal(t, "urgent", Priority("urgent").Label())
}

func TestTask_IsCompleted(t *testing.T) {
	require.True(t, Task{Status: TaskStatusCompleted}.IsCompleted())
	require.False(t, Task{Status: TaskStatusInProgress}.IsCompleted())
}

func TestTask_HasDetails(t *testing.T) {
	require.False(t, Task{}.HasDetails())

	notes := "ship it"
	require.True(t, Task{Notes: &notes}.HasDetails())
	require.True(t, Task{Difficulties: &notes}.HasDetails())
	require.True(t, Task{Solutions: &notes}.HasDetails())
}
