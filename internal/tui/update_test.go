package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/codec"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type modelFixture struct {
	kv    *testutil.MockKV
	clock *testutil.MockClock
	store *usecase.TaskStore
	model *Model
}

// newModelFixture seeds the given texts (last one newest) and returns a
// loaded, sized model.
func newModelFixture(t *testing.T, texts ...string) *modelFixture {
	t.Helper()
	f := &modelFixture{
		kv:    testutil.NewMockKV(),
		clock: &testutil.MockClock{NowTime: testNow},
	}
	f.store = usecase.NewTaskStore(f.kv, codec.JSON{}, f.clock, &testutil.MockIDGenerator{}, nil)
	for _, text := range texts {
		_, err := f.store.Add(text, domain.PriorityNormal)
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}

	f.model = New(f.store, usecase.NewPreferences(f.kv, nil), f.clock, nil)
	f.send(f.model.Init()())
	f.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

func (f *modelFixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *modelFixture) press(keys ...string) {
	for _, k := range keys {
		f.send(keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func visibleTexts(m *Model) []string {
	items := m.taskList.Items()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(taskItem).task.Text)
	}
	return out
}

func TestModel_LoadsTasks(t *testing.T) {
	f := newModelFixture(t, "Buy milk", "Walk dog")

	assert.True(t, f.model.loaded)
	assert.Equal(t, []string{"Walk dog", "Buy milk"}, visibleTexts(f.model))
	assert.Equal(t, "Walk dog", f.model.SelectedTask().Text)
	assert.Empty(t, f.model.Toast())
}

func TestModel_LoadError(t *testing.T) {
	f := newModelFixture(t)
	f.kv.Values[domain.TasksKey] = "not json"

	f.send(f.model.Init()())

	assert.True(t, f.model.loaded)
	assert.ErrorIs(t, f.model.loadErr, domain.ErrStorageRead)
	assert.Equal(t, "Error loading tasks", f.model.Toast())
	assert.Empty(t, visibleTexts(f.model))
}

func TestModel_InitCommandRunsAlongsideView(t *testing.T) {
	kv := testutil.NewMockKV()
	clock := &testutil.MockClock{NowTime: testNow}
	store := usecase.NewTaskStore(kv, codec.JSON{}, clock, &testutil.MockIDGenerator{}, nil)
	for i := range 200 {
		_, err := store.Add(fmt.Sprintf("task %d", i), domain.PriorityNormal)
		require.NoError(t, err)
	}

	m := New(store, usecase.NewPreferences(kv, nil), clock, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := m.Init()
	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()
	for range 50 {
		assert.Contains(t, m.View(), "Total 200")
	}
	m.Update(<-msgs)

	assert.Len(t, visibleTexts(m), 200)
	assert.Empty(t, m.Toast())
}

func TestModel_IgnoresStoreKeysUntilLoaded(t *testing.T) {
	kv := testutil.NewMockKV()
	clock := &testutil.MockClock{NowTime: testNow}
	store := usecase.NewTaskStore(kv, codec.JSON{}, clock, &testutil.MockIDGenerator{}, nil)
	m := New(store, usecase.NewPreferences(kv, nil), clock, nil)

	m.Update(keyMsg("a"))
	assert.Equal(t, ModeNormal, m.Mode())

	m.Update(keyMsg("/"))
	assert.Equal(t, ModeSearch, m.Mode())
}

func TestModel_AddTask(t *testing.T) {
	f := newModelFixture(t, "Buy milk")

	f.press("a")
	require.Equal(t, ModeAdd, f.model.Mode())
	f.model.textInput.SetValue("Call mom")
	cmd := f.send(keyMsg("enter"))

	assert.NotNil(t, cmd, "toast expiry should be scheduled")
	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Equal(t, []string{"Call mom", "Buy milk"}, visibleTexts(f.model))
	assert.Equal(t, "Call mom", f.model.SelectedTask().Text)
	assert.Equal(t, "Task added successfully", f.model.Toast())
	assert.Len(t, f.store.Tasks(), 2)
}

func TestModel_AddWithPriority(t *testing.T) {
	f := newModelFixture(t)

	f.press("a", "tab")
	assert.Equal(t, domain.PriorityHigh, f.model.AddPriority())
	f.model.textInput.SetValue("Pay rent")
	f.press("enter")

	require.Len(t, f.store.Tasks(), 1)
	assert.Equal(t, domain.PriorityHigh, f.store.Tasks()[0].Priority)

	f.press("a")
	assert.Equal(t, domain.PriorityNormal, f.model.AddPriority(), "form opens at normal")
	f.press("tab", "tab", "tab")
	assert.Equal(t, domain.PriorityNormal, f.model.AddPriority())
	assert.Empty(t, f.model.textInput.Value(), "tab is not typed into the input")
}

func TestModel_AddTyped(t *testing.T) {
	f := newModelFixture(t)

	f.press("a", "q", "x")
	assert.Equal(t, "qx", f.model.textInput.Value(), "keys go to the input while typing")
	f.press("enter")

	assert.Equal(t, []string{"qx"}, visibleTexts(f.model))
}

func TestModel_AddEmptyStaysInInput(t *testing.T) {
	f := newModelFixture(t)

	f.press("a")
	f.model.textInput.SetValue("   ")
	f.press("enter")

	assert.Equal(t, ModeAdd, f.model.Mode())
	assert.Empty(t, f.store.Tasks())
	assert.Empty(t, f.model.Toast())
}

func TestModel_AddCancel(t *testing.T) {
	f := newModelFixture(t)

	f.press("a")
	f.model.textInput.SetValue("Draft")
	f.press("esc")

	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Empty(t, f.store.Tasks())
	assert.Empty(t, f.model.textInput.Value())
}

func TestModel_ToggleDone(t *testing.T) {
	f := newModelFixture(t, "Buy milk")

	f.press("x")
	assert.True(t, f.store.Tasks()[0].Done)
	assert.Equal(t, "Task completed!", f.model.Toast())

	f.model.toast = ""
	f.press("x")
	assert.False(t, f.store.Tasks()[0].Done)
	assert.Empty(t, f.model.Toast(), "reopening shows no toast")
}

func TestModel_ToggleKeepsSelectionUnderFilter(t *testing.T) {
	f := newModelFixture(t, "Buy milk", "Walk dog")

	f.press("2") // active
	f.press("x")

	assert.Equal(t, []string{"Buy milk"}, visibleTexts(f.model))
	assert.Equal(t, "Buy milk", f.model.SelectedTask().Text)
}

func TestModel_SaveErrorKeepsChange(t *testing.T) {
	f := newModelFixture(t, "Buy milk")
	f.kv.SetErr = errors.New("disk full")

	f.press("x")

	assert.True(t, f.store.Tasks()[0].Done)
	assert.Equal(t, "Error saving tasks", f.model.Toast())
	assert.Equal(t, ToastError, f.model.toastKind)
}

func TestModel_CyclePriority(t *testing.T) {
	f := newModelFixture(t, "Buy milk")

	f.press("p")
	assert.Equal(t, "Priority set to high", f.model.Toast())
	f.press("p")
	assert.Equal(t, "Priority set to low", f.model.Toast())
	f.press("p")
	assert.Equal(t, "Priority set to normal", f.model.Toast())
	assert.Equal(t, domain.PriorityNormal, f.store.Tasks()[0].Priority)
}

func TestModel_Delete(t *testing.T) {
	f := newModelFixture(t, "Buy milk", "Write the quarterly report")

	f.press("d")

	assert.Equal(t, []string{"Buy milk"}, visibleTexts(f.model))
	assert.Equal(t, `"Write the quarterly ..." deleted`, f.model.Toast())
	assert.Equal(t, ToastWarning, f.model.toastKind)
}

func TestModel_DeleteOnEmptyListIsNoop(t *testing.T) {
	f := newModelFixture(t)

	f.press("d", "x", "p", "e")

	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Empty(t, f.model.Toast())
	assert.Zero(t, f.kv.SetCalls)
}

func TestDeletedMessage(t *testing.T) {
	assert.Equal(t, `"Buy milk" deleted`, deletedMessage("Buy milk"))
	assert.Equal(t, `"exactly twenty chars" deleted`, deletedMessage("exactly twenty chars"))
	assert.Equal(t, `"exactly twenty chars..." deleted`, deletedMessage("exactly twenty chars!"))
}

func TestModel_Edit(t *testing.T) {
	f := newModelFixture(t, "Buy milk")

	f.press("e")
	require.Equal(t, ModeEdit, f.model.Mode())
	assert.Equal(t, "Buy milk", f.model.textInput.Value())

	f.model.textInput.SetValue("Buy oat milk")
	f.press("enter")

	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Equal(t, "Buy oat milk", f.store.Tasks()[0].Text)
	assert.Equal(t, "Task updated", f.model.Toast())
}

func TestModel_EditUnchanged(t *testing.T) {
	f := newModelFixture(t, "Buy milk")
	calls := f.kv.SetCalls

	f.press("e", "enter")

	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Empty(t, f.model.Toast())
	assert.Equal(t, calls, f.kv.SetCalls)
}

func TestModel_EditEmptyStaysInInput(t *testing.T) {
	f := newModelFixture(t, "Buy milk")

	f.press("e")
	f.model.textInput.SetValue("")
	f.press("enter")

	assert.Equal(t, ModeEdit, f.model.Mode())
	assert.Equal(t, "Buy milk", f.store.Tasks()[0].Text)
}

func TestModel_ClearCompleted(t *testing.T) {
	f := newModelFixture(t, "a", "b", "c")

	f.press("x", "down", "x")
	f.press("c")

	assert.Equal(t, []string{"a"}, visibleTexts(f.model))
	assert.Equal(t, "Cleared 2 completed tasks", f.model.Toast())

	f.press("c")
	assert.Equal(t, "Cleared 0 completed tasks", f.model.Toast())
}

func TestModel_ClearCompletedSingular(t *testing.T) {
	f := newModelFixture(t, "a")

	f.press("x", "c")

	assert.Equal(t, "Cleared 1 completed task", f.model.Toast())
}

func TestModel_ClearAllConfirm(t *testing.T) {
	f := newModelFixture(t, "a", "b")

	f.press("C")
	require.Equal(t, ModeConfirm, f.model.Mode())
	f.press("n")
	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Len(t, f.store.Tasks(), 2)

	f.press("C", "y")
	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Empty(t, f.store.Tasks())
	assert.Equal(t, "All tasks cleared", f.model.Toast())
}

func TestModel_Filters(t *testing.T) {
	f := newModelFixture(t, "a", "b", "c")
	f.press("x") // c done
	f.press("down", "p")

	tests := []struct {
		key    string
		filter domain.Filter
		want   []string
	}{
		{"2", domain.FilterActive, []string{"b", "a"}},
		{"3", domain.FilterDone, []string{"c"}},
		{"4", domain.FilterHigh, []string{"b"}},
		{"1", domain.FilterAll, []string{"c", "b", "a"}},
		{"f", domain.FilterActive, []string{"b", "a"}},
	}

	for _, tt := range tests {
		f.press(tt.key)
		assert.Equal(t, tt.filter, f.model.Filter(), "after %q", tt.key)
		assert.Equal(t, tt.want, visibleTexts(f.model), "after %q", tt.key)
	}
}

func TestModel_Search(t *testing.T) {
	f := newModelFixture(t, "Buy milk", "Walk dog", "Milk the cow")

	f.press("/")
	require.Equal(t, ModeSearch, f.model.Mode())
	f.press("M", "I", "L")

	assert.Equal(t, "MIL", f.model.SearchTerm())
	assert.Equal(t, []string{"Milk the cow", "Buy milk"}, visibleTexts(f.model))

	f.press("enter")
	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Equal(t, "MIL", f.model.SearchTerm(), "term survives leaving search mode")

	f.press("esc")
	assert.Empty(t, f.model.SearchTerm())
	assert.Len(t, visibleTexts(f.model), 3)
}

func TestModel_SearchEscClears(t *testing.T) {
	f := newModelFixture(t, "Buy milk", "Walk dog")

	f.press("/", "d", "o", "g", "esc")

	assert.Equal(t, ModeNormal, f.model.Mode())
	assert.Empty(t, f.model.SearchTerm())
	assert.Len(t, visibleTexts(f.model), 2)
}

func TestModel_ToggleTheme(t *testing.T) {
	f := newModelFixture(t)
	require.False(t, f.model.dark)

	f.press("t")
	assert.True(t, f.model.dark)
	assert.Equal(t, "true", f.kv.Values[domain.DarkThemeKey])
	assert.Equal(t, "Dark theme activated", f.model.Toast())
	assert.Equal(t, DarkPalette.Primary, f.model.styles.Palette.Primary)

	f.press("t")
	assert.False(t, f.model.dark)
	assert.Equal(t, "Light theme activated", f.model.Toast())
}

func TestModel_ThemeRestoredOnStart(t *testing.T) {
	kv := testutil.NewMockKV()
	kv.Values[domain.DarkThemeKey] = "true"
	clock := &testutil.MockClock{NowTime: testNow}
	store := usecase.NewTaskStore(kv, codec.JSON{}, clock, &testutil.MockIDGenerator{}, nil)

	m := New(store, usecase.NewPreferences(kv, nil), clock, nil)

	assert.True(t, m.dark)
	assert.Equal(t, DarkPalette.Primary, m.styles.Palette.Primary)
}

func TestModel_ToastExpires(t *testing.T) {
	f := newModelFixture(t, "a")

	f.press("p")
	first := f.model.toastID
	f.press("p")
	require.Equal(t, "Priority set to low", f.model.Toast())

	f.send(MsgToastExpired{ID: first})
	assert.Equal(t, "Priority set to low", f.model.Toast(), "stale expiry keeps the newer toast")

	f.send(MsgToastExpired{ID: f.model.toastID})
	assert.Empty(t, f.model.Toast())
}

func TestModel_HelpMode(t *testing.T) {
	f := newModelFixture(t)

	f.press("?")
	assert.Equal(t, ModeHelp, f.model.Mode())
	f.press("esc")
	assert.Equal(t, ModeNormal, f.model.Mode())
}

func TestModel_Quit(t *testing.T) {
	f := newModelFixture(t)

	cmd := f.send(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	f.press("a")
	cmd = f.send(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
