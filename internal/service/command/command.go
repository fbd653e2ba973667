// Package command сопоставляет распознанную фразу с командой навигатора.
package command

import "strings"

// Action идентификатор действия, привязанного к фразе-триггеру.
type Action int

const (
	ActionNone Action = iota
	ActionMoveRight
	ActionMoveLeft
	ActionSlideshow
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveRight:
		return "move-right"
	case ActionMoveLeft:
		return "move-left"
	case ActionSlideshow:
		return "special-combo"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Entry одна строка таблицы: фраза-триггер и действие.
type Entry struct {
	Trigger string
	Action  Action
}

// Table упорядоченная таблица команд. Порядок строк определяет,
// какая команда сработает, если в фразе встречается несколько триггеров.
type Table []Entry

// DefaultTable фиксированный набор команд навигатора.
func DefaultTable() Table {
	return Table{
		{Trigger: "next", Action: ActionMoveRight},
		{Trigger: "previous", Action: ActionMoveLeft},
		{Trigger: "slideshow", Action: ActionSlideshow},
		{Trigger: "exit", Action: ActionQuit},
	}
}

// Match возвращает первую строку таблицы, триггер которой входит в transcript как подстрока.
// Остальные строки после совпадения не проверяются.
func (t Table) Match(transcript string) (Entry, bool) {
	for _, e := range t {
		if e.Trigger == "" {
			continue
		}
		if strings.Contains(transcript, e.Trigger) {
			return e, true
		}
	}
	return Entry{}, false
}

// Triggers список фраз в порядке таблицы (для стартовой подсказки).
func (t Table) Triggers() []string {
	out := make([]string, 0, len(t))
	for _, e := range t {
		out = append(out, e.Trigger)
	}
	return out
}
