// Package model содержит доменные структуры внеклассных активностей.
package model

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Activity описывает одну внеклассную активность: описание, расписание, лимит и список участников.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Clone возвращает копию активности, не разделяющую список участников с оригиналом.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = slices.Clone(a.Participants)
	if out.Participants == nil {
		out.Participants = make([]string, 0)
	}
	return out
}

// ActivityEntry связывает активность с её уникальным именем.
type ActivityEntry struct {
	Name     string `yaml:"name"`
	Activity `yaml:",inline"`
}

// Catalog — упорядоченный список активностей.
// В JSON сериализуется как объект "имя -> активность" с сохранением порядка.
type Catalog []ActivityEntry

// Get ищет активность по точному имени.
func (c Catalog) Get(name string) (Activity, bool) {
	for _, e := range c {
		if e.Name == name {
			return e.Activity, true
		}
	}
	return Activity{}, false
}

// Names возвращает имена активностей в порядке каталога.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		names = append(names, e.Name)
	}
	return names
}

// MarshalJSON пишет объект вручную: encoding/json сортирует ключи map.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Activity.Clone())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
