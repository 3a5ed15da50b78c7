package depviz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolikAsher/depviz"
	"github.com/rolikAsher/depviz/internal/testutil"
)

// serveIndex returns a location for an HTTP server publishing the given
// index archive at the conventional path.
func serveIndex(t *testing.T, index []byte) depviz.Location {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+depviz.IndexName {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(index)
	}))
	t.Cleanup(server.Close)

	loc, err := depviz.ParseLocation(server.URL)
	require.NoError(t, err)
	return loc
}

func TestDependencies(t *testing.T) {
	t.Parallel()

	index := testutil.BuildIndex(t, testutil.Member{
		Name: "APKINDEX",
		Body: "P: bash\nD: libc musl\n\nP: musl\n",
	})
	loc := serveIndex(t, index)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	ctx := context.Background()

	deps, ok, err := client.Dependencies(ctx, loc, "bash")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"libc", "musl"}, deps)

	deps, ok, err = client.Dependencies(ctx, loc, "musl")
	require.NoError(t, err)
	assert.True(t, ok, "a package without a D: line is still found")
	assert.Empty(t, deps)

	deps, ok, err = client.Dependencies(ctx, loc, "zzz")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, deps)
}

func TestDependencies_Local(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteIndex(t, dir, testutil.Member{
		Name: "APKINDEX",
		Body: "P:vim\nD:ncurses-libs\n",
	})
	loc, err := depviz.ParseLocation(dir)
	require.NoError(t, err)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	deps, ok, err := client.Dependencies(context.Background(), loc, "vim")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"ncurses-libs"}, deps)
}

func TestDependencies_Idempotent(t *testing.T) {
	t.Parallel()

	index := testutil.BuildIndex(t, testutil.Member{
		Name: "APKINDEX",
		Body: "P:bash\nD:libc musl\n",
	})
	loc := serveIndex(t, index)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	ctx := context.Background()
	first, ok, err := client.Dependencies(ctx, loc, "bash")
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		deps, ok, err := client.Dependencies(ctx, loc, "bash")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, first, deps)
	}
}

func TestDependencies_DuplicateAcrossMembers(t *testing.T) {
	t.Parallel()

	// Both members declare curl; the first in container order wins.
	index := testutil.BuildIndex(t,
		testutil.Member{Name: "APKINDEX.1", Body: "P:curl\nD:libcurl zlib\n"},
		testutil.Member{Name: "APKINDEX.2", Body: "P:curl\nD:openssl\n"},
	)
	loc := serveIndex(t, index)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	deps, ok, err := client.Dependencies(context.Background(), loc, "curl")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"libcurl", "zlib"}, deps)
}

func TestDependencies_CorruptArchive(t *testing.T) {
	t.Parallel()

	loc := serveIndex(t, []byte("not a gzip stream at all"))

	client, err := depviz.NewClient()
	require.NoError(t, err)

	_, _, err = client.Dependencies(context.Background(), loc, "bash")
	assert.ErrorIs(t, err, depviz.ErrCorrupt)
}

func TestDependencies_TransferError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	loc, err := depviz.ParseLocation(server.URL)
	require.NoError(t, err)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	_, _, err = client.Dependencies(context.Background(), loc, "bash")
	assert.ErrorIs(t, err, depviz.ErrTransfer)
}

func TestDependencies_LocalMissingIndex(t *testing.T) {
	t.Parallel()

	loc, err := depviz.ParseLocation(t.TempDir())
	require.NoError(t, err)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	_, _, err = client.Dependencies(context.Background(), loc, "bash")
	assert.ErrorIs(t, err, depviz.ErrNotFound)
}

func TestPackages(t *testing.T) {
	t.Parallel()

	index := testutil.BuildIndex(t, testutil.Member{
		Name: "APKINDEX",
		Body: "P:bash\n\nP:bash-doc\n\nP:musl\n\nP:zsh\n",
	})
	loc := serveIndex(t, index)

	client, err := depviz.NewClient()
	require.NoError(t, err)

	ctx := context.Background()

	names, err := client.Packages(ctx, loc, "bash")
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "bash-doc"}, names)

	names, err = client.Packages(ctx, loc, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "bash-doc", "musl", "zsh"}, names)

	names, err = client.Packages(ctx, loc, "nope")
	require.NoError(t, err)
	assert.Empty(t, names)
}
