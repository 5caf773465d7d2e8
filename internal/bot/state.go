package bot

import "sync"

type screen int

const (
	screenMenu screen = iota
	screenOrders
	screenBoosts
	screenItems
	screenTeam
	screenWardrobe
)

// chatState - состояние диалога одного чата. Живёт в памяти: после
// перезапуска бота игрок просто снова окажется в главном меню.
type chatState struct {
	Screen screen
	Page   int
	Codes  []string // коды на текущей странице, выбор цифрой
}

// stateStore раздаёт состояние только копиями: апдейты одного чата могут
// обрабатываться параллельно, поэтому любая мутация идёт под мьютексом
// через методы стора.
type stateStore struct {
	mu     sync.Mutex
	states map[int64]chatState
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[int64]chatState)}
}

func (s *stateStore) get(chatID int64) chatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[chatID]
}

// open switches the chat to a screen, starting from the first page.
func (s *stateStore) open(chatID int64, sc screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = chatState{Screen: sc}
}

// setCodes pins the selectable codes of the currently rendered page.
func (s *stateStore) setCodes(chatID int64, codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[chatID]
	st.Codes = codes
	s.states[chatID] = st
}

// turn shifts the page, clamped at zero, and returns the updated state.
func (s *stateStore) turn(chatID int64, delta int) chatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.states[chatID]
	st.Page += delta
	if st.Page < 0 {
		st.Page = 0
	}
	s.states[chatID] = st
	return st
}

func (s *stateStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = chatState{}
}
