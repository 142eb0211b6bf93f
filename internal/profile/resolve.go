package profile

import (
	"os"
	"strings"
)

// DefaultAddress — адрес REST-шлюза платформы, когда он нигде не задан.
const DefaultAddress = "http://localhost:8080"

// Переменные окружения, перекрывающие сохранённый профиль.
const (
	EnvAddress = "DIRIGENT_ADDRESS"
	EnvTenant  = "DIRIGENT_TENANT"
	EnvToken   = "DIRIGENT_TOKEN"
	EnvProfile = "DIRIGENT_PROFILE"
)

// Connection — разрешённые параметры подключения к платформе.
type Connection struct {
	// Profile — имя профиля, из которого взяты параметры.
	// Пустая строка: профиль не использовался.
	Profile string

	// Address — базовый URL REST-шлюза.
	Address string

	// Tenant — идентификатор арендатора, может быть пустым.
	Tenant string

	// Token — bearer-токен, может быть пустым.
	Token string

	// Insecure отключает проверку TLS-сертификата платформы.
	Insecure bool
}

// Overrides — значения флагов командной строки.
type Overrides struct {
	Profile string
	Address string
	Tenant  string
}

// Resolve собирает параметры подключения.
//
// Приоритет источников, по убыванию:
//  1. флаги командной строки
//  2. переменные окружения DIRIGENT_*
//  3. выбранный профиль
//  4. значения по умолчанию
//
// Явно названный профиль (флагом или окружением) обязан существовать.
// Устаревшая отметка текущего профиля молча игнорируется.
func (s *Store) Resolve(ov Overrides) (Connection, error) {
	var conn Connection

	name := ov.Profile
	explicit := name != ""
	if name == "" {
		name = strings.TrimSpace(os.Getenv(EnvProfile))
		explicit = name != ""
	}
	if name == "" {
		name = s.Current
	}

	if name != "" {
		p, err := s.Get(name)
		if err != nil && explicit {
			return Connection{}, err
		}
		if err == nil {
			conn.Profile = name
			conn.Address = p.Address
			conn.Tenant = p.Tenant
			conn.Token = p.Token
			conn.Insecure = p.Insecure
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvAddress)); v != "" {
		conn.Address = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTenant)); v != "" {
		conn.Tenant = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		conn.Token = v
	}

	if ov.Address != "" {
		conn.Address = ov.Address
	}
	if ov.Tenant != "" {
		conn.Tenant = ov.Tenant
	}

	if conn.Address == "" {
		conn.Address = DefaultAddress
	}
	return conn, nil
}
