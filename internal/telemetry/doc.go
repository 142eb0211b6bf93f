// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Все команды используют единый формат логирования, вывод идёт
// в stderr и не смешивается с данными команд в stdout.
package telemetry
