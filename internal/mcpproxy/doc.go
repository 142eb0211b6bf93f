// Package mcpproxy выставляет операции платформы как MCP-инструменты.
//
// Прокси обслуживает протокол Model Context Protocol на stdio и
// переиспользует тот же конвейер деплоя и клиент платформы, что и CLI.
// Бизнес-логики здесь нет: только описания инструментов и обвязка.
//
// Включает:
//   - server.go — сборка MCP-сервера и запуск на stdio
//   - tools.go — инструменты deploy, create_instance, get_instance
package mcpproxy
