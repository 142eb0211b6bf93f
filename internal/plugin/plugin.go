package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Prefix — префикс исполняемых файлов, которые считаются плагинами.
const Prefix = "dirigent-"

// Plugin — внешняя подкоманда, найденная на PATH.
type Plugin struct {
	// Name — имя подкоманды без префикса.
	Name string

	// Path — полный путь исполняемого файла.
	Path string
}

// Discover сканирует каталоги PATH и возвращает плагины,
// отсортированные по имени.
//
// Для повторяющихся имён побеждает более ранний каталог PATH,
// неисполняемые файлы не затеняют исполняемые.
func Discover() []Plugin {
	seen := map[string]bool{}
	var found []Plugin

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, Prefix) || name == Prefix {
				continue
			}
			path := filepath.Join(dir, name)
			if !isExecutable(path) {
				continue
			}
			short := strings.TrimPrefix(name, Prefix)
			if seen[short] {
				continue
			}
			seen[short] = true
			found = append(found, Plugin{Name: short, Path: path})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// Find ищет плагин name на PATH.
func Find(name string) (string, bool) {
	path, err := exec.LookPath(Prefix + name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Run запускает плагин и возвращает его код завершения.
// stdin, stdout и stderr пробрасываются насквозь.
func Run(ctx context.Context, path string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("failed to run plugin %s: %w", path, err)
}
