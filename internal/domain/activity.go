package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Activity представляет внеклассное занятие и список записавшихся участников
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone возвращает глубокую копию занятия
func (a Activity) Clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	if a.Participants == nil {
		a.Participants = []string{}
	}
	return a
}

// HasParticipant проверяет, записан ли email на занятие
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// NamedActivity связывает занятие с его именем
type NamedActivity struct {
	Name     string
	Activity Activity
}

// Catalog хранит занятия в порядке их добавления.
// В JSON сериализуется как объект name → activity с сохранением порядка ключей.
type Catalog struct {
	entries []NamedActivity
	index   map[string]int
}

// NewCatalog создает пустой каталог
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add добавляет занятие в конец каталога. Повторное имя заменяет запись на месте.
func (c *Catalog) Add(name string, activity Activity) {
	if i, ok := c.index[name]; ok {
		c.entries[i].Activity = activity
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, NamedActivity{Name: name, Activity: activity})
}

// Get возвращает занятие по имени
func (c *Catalog) Get(name string) (Activity, bool) {
	i, ok := c.index[name]
	if !ok {
		return Activity{}, false
	}
	return c.entries[i].Activity, true
}

// Len возвращает количество занятий
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names возвращает имена занятий в порядке добавления
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries возвращает записи каталога в порядке добавления
func (c *Catalog) Entries() []NamedActivity {
	return slices.Clone(c.entries)
}

// Clone возвращает глубокую копию каталога
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		entries: make([]NamedActivity, 0, len(c.entries)),
		index:   make(map[string]int, len(c.entries)),
	}
	for _, e := range c.entries {
		out.Add(e.Name, e.Activity.Clone())
	}
	return out
}

// MarshalJSON сериализует каталог в объект с ключами в порядке добавления
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(e.Activity.Clone())
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON читает объект name → activity, сохраняя порядок ключей
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog: expected JSON object, got %v", tok)
	}

	*c = Catalog{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("catalog: expected activity name, got %v", tok)
		}

		var activity Activity
		if err := dec.Decode(&activity); err != nil {
			return fmt.Errorf("catalog: activity %q: %w", name, err)
		}
		c.Add(name, activity.Clone())
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
