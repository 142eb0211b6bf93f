// Package plugin подключает внешние подкоманды.
//
// Плагин — это исполняемый файл dirigent-<имя> на PATH. Неизвестная
// подкоманда CLI передаётся плагину с тем же именем, его stdio
// пробрасывается насквозь, код завершения зеркалируется.
//
// Включает:
//   - plugin.go — поиск плагинов на PATH и их запуск
package plugin
