package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// --- Ошибки хранилища ---

var (
	// ErrProfileExists — профиль с таким именем уже есть.
	ErrProfileExists = errors.New("profile already exists")

	// ErrProfileNotFound — профиль с таким именем не найден.
	ErrProfileNotFound = errors.New("profile not found")
)

// Profile — сохранённые параметры подключения к платформе.
type Profile struct {
	// Address — базовый URL REST-шлюза платформы.
	Address string `yaml:"address"`

	// Tenant — идентификатор арендатора, может быть пустым.
	Tenant string `yaml:"tenant,omitempty"`

	// Token — bearer-токен, может быть пустым.
	Token string `yaml:"token,omitempty"`

	// Insecure отключает проверку TLS-сертификата платформы.
	Insecure bool `yaml:"insecure,omitempty"`
}

// Store — набор профилей с отметкой текущего.
type Store struct {
	// Current — имя выбранного профиля, может быть пустым.
	Current string `yaml:"current,omitempty"`

	// Profiles — профили по именам.
	Profiles map[string]Profile `yaml:"profiles"`

	path string
}

// DefaultPath возвращает путь файла профилей в каталоге
// конфигурации пользователя: .../dirigent/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "dirigent", "config.yaml"), nil
}

// Load читает хранилище из path.
//
// Отсутствующий файл не ошибка: возвращается пустое хранилище,
// готовое к Add и Save.
func Load(path string) (*Store, error) {
	s := &Store{Profiles: map[string]Profile{}, path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	if s.Profiles == nil {
		s.Profiles = map[string]Profile{}
	}
	return s, nil
}

// Save записывает хранилище на диск.
//
// Файл получает права 0600, каталог 0700: в профилях лежат токены.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

// Add добавляет профиль под именем name, занятое имя — ошибка.
// Первый добавленный профиль сразу становится текущим.
func (s *Store) Add(name string, p Profile) error {
	if _, ok := s.Profiles[name]; ok {
		return fmt.Errorf("%w: %s", ErrProfileExists, name)
	}
	s.Profiles[name] = p
	if len(s.Profiles) == 1 {
		s.Current = name
	}
	return nil
}

// Get возвращает профиль по имени.
func (s *Store) Get(name string) (Profile, error) {
	p, ok := s.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return p, nil
}

// Use делает профиль name текущим.
func (s *Store) Use(name string) error {
	if _, ok := s.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	s.Current = name
	return nil
}

// Delete удаляет профиль name. Если он был текущим, отметка снимается.
func (s *Store) Delete(name string) error {
	if _, ok := s.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	delete(s.Profiles, name)
	if s.Current == name {
		s.Current = ""
	}
	return nil
}

// Names возвращает имена профилей в алфавитном порядке.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
