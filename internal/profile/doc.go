// Package profile хранит локальные профили подключения к платформе.
//
// Включает:
//   - profile.go — YAML-хранилище профилей в каталоге конфигурации пользователя
//   - resolve.go — сбор параметров подключения: флаги > окружение > профиль
package profile
