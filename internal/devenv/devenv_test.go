package devenv

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlame/kickoff/internal/exec"
	"github.com/wlame/kickoff/internal/exec/exectest"
)

func TestCluster_Create(t *testing.T) {
	rec := &exectest.Recorder{}
	c := NewCluster(rec, "/work/demo")

	require.NoError(t, c.Create(context.Background(), "demo-proj"))

	want := []exec.Command{{
		Name: "kind",
		Args: []string{"create", "cluster", "--name", "demo-proj"},
		Dir:  "/work/demo",
	}}
	if diff := cmp.Diff(want, rec.Commands); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "kind create cluster --name demo-proj", rec.Lines()[0])
}

func TestCluster_CreateFailure(t *testing.T) {
	rec := &exectest.Recorder{Fail: map[string]int{"kind": 1}}
	c := NewCluster(rec, ".")

	err := c.Create(context.Background(), "demo")
	code, ok := exec.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestBuilder_Compile(t *testing.T) {
	rec := &exectest.Recorder{}
	b := NewBuilder(rec, "/work/demo")

	require.NoError(t, b.Compile(context.Background()))

	want := []exec.Command{{Name: "make", Args: []string{"compile"}, Dir: "/work/demo"}}
	if diff := cmp.Diff(want, rec.Commands); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CompileFailure(t *testing.T) {
	rec := &exectest.Recorder{Fail: map[string]int{"make compile": 2}}
	b := NewBuilder(rec, ".")

	code, ok := exec.ExitCode(b.Compile(context.Background()))
	require.True(t, ok)
	assert.Equal(t, 2, code)
}
