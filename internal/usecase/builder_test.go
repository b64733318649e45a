package usecase

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

// memStore is an in-memory Store that counts writes per key, so debounce
// coalescing can be observed without a filesystem.
type memStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves map[string]int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, saves: map[string]int{}}
}

func (s *memStore) Save(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = b
	s.saves[key]++
	return nil
}

func (s *memStore) Load(key string, v interface{}) error {
	s.mu.Lock()
	b, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, v)
}

func (s *memStore) saveCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[key]
}

func TestNewBuilder_DefaultsWhenStoreEmpty(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)

	assert.True(t, b.Snapshot().IsEmpty())
	assert.Equal(t, "modern", b.TemplateID())
	assert.Equal(t, DefaultTitle, b.Title())
	assert.NotEmpty(t, b.PreviewHTML(), "preview must be rendered at startup")
	assert.Equal(t, 0, b.Score())
}

func TestNewBuilder_NilStore(t *testing.T) {
	b := NewBuilder(nil, time.Hour)
	b.SetPersonal(model.Personal{Name: "Alex"})
	assert.Equal(t, "Alex", b.Snapshot().Personal.Name)
}

func TestNewBuilder_LoadsPersistedState(t *testing.T) {
	store := newMemStore()
	doc := model.Default()
	doc.Personal.Name = "Alex Johnson"
	require.NoError(t, store.Save(KeyDocument, doc))
	require.NoError(t, store.Save(KeyTemplate, "creative"))
	require.NoError(t, store.Save(KeyTitle, "Alex CV"))

	b := NewBuilder(store, time.Hour)

	assert.Equal(t, "Alex Johnson", b.Snapshot().Personal.Name)
	assert.Equal(t, "creative", b.TemplateID())
	assert.Equal(t, "Alex CV", b.Title())
	assert.Contains(t, b.PreviewHTML(), "Alex Johnson")
}

func TestNewBuilder_IgnoresUnknownPersistedTemplate(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Save(KeyTemplate, "retired-template"))

	b := NewBuilder(store, time.Hour)
	assert.Equal(t, "modern", b.TemplateID())
}

func TestBuilder_EditUpdatesPreviewAndScore(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)

	b.SetPersonal(model.Personal{Name: "Alex", Email: "a@b.c"})

	assert.Contains(t, b.PreviewHTML(), "Alex")
	assert.Equal(t, ScoreName+ScoreEmail, b.Score())
}

func TestBuilder_SelectTemplateChangesOnlyPresentation(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)
	b.SetPersonal(model.Personal{Name: "Alex"})
	before := b.Snapshot()

	require.NoError(t, b.SelectTemplate("minimal"))

	assert.Equal(t, before, b.Snapshot(), "switching templates must not touch the document")
	assert.Equal(t, "minimal", b.TemplateID())
	assert.Contains(t, b.PreviewHTML(), `data-template="minimal"`)

	assert.Error(t, b.SelectTemplate("unknown"))
	assert.Equal(t, "minimal", b.TemplateID())
}

func TestBuilder_AppendEntryMintsStableID(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)

	raw := json.RawMessage(`{"name":"Go","level":250}`)
	entry, err := b.AppendEntry("skills", raw)
	require.NoError(t, err)

	skill, ok := entry.(model.SkillEntry)
	require.True(t, ok)
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, 100, skill.Level, "level is clamped on the way in")

	// updating preserves the id
	updated, err := b.UpdateEntry("skills", skill.ID, json.RawMessage(`{"name":"Golang","level":-3}`))
	require.NoError(t, err)
	us, ok := updated.(model.SkillEntry)
	require.True(t, ok)
	assert.Equal(t, skill.ID, us.ID)
	assert.Equal(t, 0, us.Level)
}

func TestBuilder_EntryCRUDAcrossSections(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)

	cases := []struct {
		section string
		body    string
	}{
		{"experience", `{"company":"Acme","role":"Engineer","bullets":["a","b"]}`},
		{"education", `{"school":"State","degree":"BS"}`},
		{"skills", `{"name":"Go","level":90}`},
		{"projects", `{"name":"Sidecar","tech":"Go"}`},
		{"certificates", `{"name":"CKA","issuer":"CNCF"}`},
	}
	for _, tc := range cases {
		entry, err := b.AppendEntry(tc.section, json.RawMessage(tc.body))
		require.NoError(t, err, tc.section)
		require.NotNil(t, entry, tc.section)
	}

	doc := b.Snapshot()
	assert.Len(t, doc.Experience, 1)
	assert.Len(t, doc.Education, 1)
	assert.Len(t, doc.Skills, 1)
	assert.Len(t, doc.Projects, 1)
	assert.Len(t, doc.Certificates, 1)

	require.NoError(t, b.RemoveEntry("experience", doc.Experience[0].ID))
	assert.Len(t, b.Snapshot().Experience, 0)

	assert.ErrorIs(t, b.RemoveEntry("experience", "missing"), ErrNotFound)
	assert.ErrorIs(t, b.RemoveEntry("hobbies", "x"), ErrUnknownSection)
	_, err := b.UpdateEntry("skills", "missing", json.RawMessage(`{"name":"x"}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuilder_BadDecodeLeavesDocumentUntouched(t *testing.T) {
	b := NewBuilder(newMemStore(), time.Hour)
	before := b.Snapshot()

	_, err := b.AppendEntry("skills", json.RawMessage(`{"level":"ninety"}`))
	assert.Error(t, err)
	assert.Equal(t, before, b.Snapshot())
}

func TestBuilder_AutosaveCoalescesBursts(t *testing.T) {
	store := newMemStore()
	b := NewBuilder(store, 40*time.Millisecond)

	// a burst of edits within the debounce window persists exactly once,
	// with the final state
	b.SetPersonal(model.Personal{Name: "A"})
	b.SetPersonal(model.Personal{Name: "Al"})
	b.SetPersonal(model.Personal{Name: "Alex"})

	assert.Equal(t, 0, store.saveCount(KeyDocument), "nothing persists inside the window")

	assert.Eventually(t, func() bool {
		return store.saveCount(KeyDocument) == 1
	}, time.Second, 10*time.Millisecond)

	var doc model.Document
	require.NoError(t, store.Load(KeyDocument, &doc))
	assert.Equal(t, "Alex", doc.Personal.Name)

	// quiet period: no further saves
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, store.saveCount(KeyDocument))
}

func TestBuilder_FlushSupersedesPendingSaves(t *testing.T) {
	store := newMemStore()
	b := NewBuilder(store, 40*time.Millisecond)

	b.SetPersonal(model.Personal{Name: "Alex"})
	b.Flush()
	assert.Equal(t, 1, store.saveCount(KeyDocument))

	// the debounced save scheduled before Flush must not fire on top
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, store.saveCount(KeyDocument))
}

func TestBuilder_ResetPersistsImmediately(t *testing.T) {
	store := newMemStore()
	b := NewBuilder(store, time.Hour)
	b.SetPersonal(model.Personal{Name: "Alex"})
	require.NoError(t, b.SelectTemplate("executive"))
	b.SetTitle("Alex CV")

	b.Reset()

	assert.True(t, b.Snapshot().IsEmpty())
	assert.Equal(t, DefaultTemplate, b.TemplateID(), "reset also reverts the template selection")
	assert.Equal(t, DefaultTitle, b.Title())

	var doc model.Document
	require.NoError(t, store.Load(KeyDocument, &doc))
	assert.True(t, doc.IsEmpty())
	var tplID string
	require.NoError(t, store.Load(KeyTemplate, &tplID))
	assert.Equal(t, DefaultTemplate, tplID)
}

func TestBuilder_RoundTripThroughStore(t *testing.T) {
	store := newMemStore()
	b := NewBuilder(store, time.Hour)
	b.SetPersonal(model.Personal{Name: "Alex Johnson", Email: "alex@example.com"})
	_, err := b.AppendEntry("experience", json.RawMessage(`{"company":"Acme","role":"Engineer","start":"2020","current":true,"bullets":["a","b"]}`))
	require.NoError(t, err)
	require.NoError(t, b.SelectTemplate("executive"))
	b.SetTitle("Alex Johnson Resume")
	b.Flush()

	reloaded := NewBuilder(store, time.Hour)
	assert.Equal(t, b.Snapshot(), reloaded.Snapshot())
	assert.Equal(t, "executive", reloaded.TemplateID())
	assert.Equal(t, "Alex Johnson Resume", reloaded.Title())
}
