// Package resolver превращает пути командной строки в упорядоченный
// набор ресурсов для деплоя.
//
// Включает:
//   - walker.go     — рекурсивный обход путей и чтение файлов
//   - classifier.go — привязка файла к группе по каталогам-предкам
//   - extract.go    — извлечение id определения из содержимого
//   - duplicates.go — поиск конфликтующих id до обращения к платформе
//   - order.go      — детерминированный порядок деплоя
//
// Resolver не делает сетевых вызовов: вся работа — чтение файловой
// системы. Результат Resolve полностью определяется содержимым диска.
package resolver
