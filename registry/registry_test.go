package registry

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/content-audit/models"
)

const sampleRegistry = `
contentTypes:
  - uid: api::article.article
    kind: collectionType
    singularName: article
    pluralName: articles
    displayName: Article
  - uid: api::homepage.homepage
    kind: singleType
    singularName: homepage
    pluralName: homepages
  - uid: plugin::users-permissions.user
    kind: collectionType
    singularName: user
    pluralName: users
    displayName: User
  - uid: plugin::upload.file
    kind: collectionType
    singularName: file
    pluralName: files
`

func sampleDirectory(t *testing.T) *Directory {
	types, err := Parse([]byte(sampleRegistry))
	require.NoError(t, err)
	return NewDirectory(types)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing uid", "contentTypes:\n  - kind: collectionType\n    pluralName: x\n"},
		{"bad kind", "contentTypes:\n  - uid: api::a.a\n    kind: table\n    pluralName: as\n"},
		{"missing plural", "contentTypes:\n  - uid: api::a.a\n    kind: collectionType\n"},
		{"duplicate", "contentTypes:\n  - {uid: api::a.a, kind: collectionType, pluralName: as}\n  - {uid: api::a.a, kind: collectionType, pluralName: bs}\n"},
		{"not yaml", "contentTypes: [\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDirectory_FindByPluralName(t *testing.T) {
	dir := sampleDirectory(t)

	ct, ok := dir.FindByPluralName("articles")
	require.True(t, ok)
	assert.Equal(t, "api::article.article", ct.UID)

	ct, ok = dir.FindByPluralName("users")
	require.True(t, ok)
	assert.Equal(t, models.UserContentType, ct.UID)

	// single types and foreign namespaces never resolve
	_, ok = dir.FindByPluralName("homepages")
	assert.False(t, ok)
	_, ok = dir.FindByPluralName("files")
	assert.False(t, ok)
	_, ok = dir.FindByPluralName("unknown")
	assert.False(t, ok)
}

func TestDirectory_FindByUID(t *testing.T) {
	dir := sampleDirectory(t)

	_, ok := dir.FindByUID("api::article.article")
	assert.True(t, ok)

	_, ok = dir.FindByUID("plugin::upload.file")
	assert.True(t, ok, "identifier lookup is restricted to collection kind only")

	_, ok = dir.FindByUID("api::homepage.homepage")
	assert.False(t, ok)
}

func TestDirectory_Auditable(t *testing.T) {
	dir := sampleDirectory(t)

	var uids []string
	for _, ct := range dir.Auditable() {
		uids = append(uids, ct.UID)
	}
	assert.Equal(t, []string{"api::article.article", models.UserContentType}, uids)
}

func TestCached_PurgedOnReplace(t *testing.T) {
	dir := sampleDirectory(t)
	cached, err := NewCached(dir, 16)
	require.NoError(t, err)

	_, ok := cached.FindByPluralName("posts")
	assert.False(t, ok)
	_, ok = cached.FindByPluralName("articles")
	assert.True(t, ok)
	assert.Equal(t, 2, cached.Len())

	// repeated lookups are answered from the cache
	ct, ok := cached.FindByPluralName("articles")
	assert.True(t, ok)
	assert.Equal(t, "Article", ct.DisplayName)

	dir.Replace(append(dir.All(), models.ContentType{
		UID: "api::post.post", Kind: models.KindCollection, PluralName: "posts",
	}))
	assert.Equal(t, 0, cached.Len())

	ct, ok = cached.FindByPluralName("posts")
	require.True(t, ok)
	assert.Equal(t, "api::post.post", ct.UID)
}

func TestCached_StaleLookupIsNotStored(t *testing.T) {
	dir := sampleDirectory(t)
	cached, err := NewCached(dir, 16)
	require.NoError(t, err)

	// A lookup that read the directory before a reload finishes after it
	ct, found, generation := dir.findByPluralName("posts")
	assert.False(t, found)

	dir.Replace(append(dir.All(), models.ContentType{
		UID: "api::post.post", Kind: models.KindCollection, PluralName: "posts",
	}))
	assert.Equal(t, generation+1, dir.Generation())

	cached.store("posts", cachedLookup{ct: ct, found: found}, generation)
	assert.Equal(t, 0, cached.Len())

	ct, ok := cached.FindByPluralName("posts")
	require.True(t, ok)
	assert.Equal(t, "api::post.post", ct.UID)
	assert.Equal(t, 1, cached.Len())
}

func TestCached_ConcurrentReload(t *testing.T) {
	dir := sampleDirectory(t)
	cached, err := NewCached(dir, 16)
	require.NoError(t, err)

	withPosts := append(dir.All(), models.ContentType{
		UID: "api::post.post", Kind: models.KindCollection, PluralName: "posts",
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cached.FindByPluralName("posts")
			}
		}()
	}
	dir.Replace(withPosts)
	wg.Wait()

	_, ok := cached.FindByPluralName("posts")
	assert.True(t, ok)
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(NewDirectory(nil), 0)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content-types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o600))

	types, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, types, 4)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content-types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o600))

	types, err := LoadFile(path)
	require.NoError(t, err)
	dir := NewDirectory(types)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, _ := test.NewNullLogger()
	require.NoError(t, Watch(ctx, path, dir, logger))

	updated := sampleRegistry + `  - uid: api::tag.tag
    kind: collectionType
    pluralName: tags
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		_, ok := dir.FindByPluralName("tags")
		return ok
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatch_InvalidFileKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content-types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o600))

	types, err := LoadFile(path)
	require.NoError(t, err)
	dir := NewDirectory(types)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, hook := test.NewNullLogger()
	require.NoError(t, Watch(ctx, path, dir, logger))

	require.NoError(t, os.WriteFile(path, []byte("contentTypes: [\n"), 0o600))

	assert.Eventually(t, func() bool {
		return hook.LastEntry() != nil
	}, 5*time.Second, 20*time.Millisecond)

	_, ok := dir.FindByPluralName("articles")
	assert.True(t, ok)
}
