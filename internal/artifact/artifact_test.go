package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSinkPutAndOverwrite(t *testing.T) {
	root := t.TempDir()
	sink := NewDirSink(root)
	ctx := context.Background()

	require.NoError(t, sink.Put(ctx, "jobs_report/2026-08-31/report.csv", "text/csv", []byte("a,b\n")))

	got, err := os.ReadFile(filepath.Join(root, "jobs_report", "2026-08-31", "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(got))

	//second put overwrites
	require.NoError(t, sink.Put(ctx, "jobs_report/2026-08-31/report.csv", "text/csv", []byte("c,d\n")))
	got, err = os.ReadFile(filepath.Join(root, "jobs_report", "2026-08-31", "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "c,d\n", string(got))
}
