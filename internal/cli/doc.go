// Package cli реализует инструмент командной строки Dirigent.
//
// # Обзор
//
// CLI — клиентская утилита платформы оркестрации процессов.
// Работает через REST-шлюз платформы и локальный файл профилей,
// собственной серверной части у инструмента нет. CLI используется
// для деплоя ресурсов, управления экземплярами процессов и
// профилями подключения.
//
// # Ключевые компоненты
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON с отступами — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: dirigent deploy . --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - deploy: деплой набора ресурсов одним атомарным запросом
//   - instance: create, show, cancel
//   - profile: add, list, show, use, delete
//   - mcp: MCP-прокси на stdio
//   - plugin: list
//
// Каждая группа создаётся через фабричную функцию (NewDeployCmd и т.д.),
// принимающую connectFn, storeFn и outputFn — замыкания для ленивого
// создания зависимостей после парсинга PersistentFlags. Неизвестные
// подкоманды перед запуском cobra уходят в диспетчер плагинов.
package cli
