package configdoc

import (
	"bufio"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

const maxLineBytes = 1 << 20

// Write formats the located resource into DocFile. When the resource cannot
// be found nothing is written and (false, nil) is returned.
func Write(m *output.Manager, loc Locator) (bool, error) {
	path, found, err := loc.Locate()
	if err != nil {
		return false, err
	}
	if !found {
		slog.Debug("Configuration resource not found, skipping configuration document",
			slog.String("resource", loc.Resource),
			slog.Any("search_path", loc.SearchPath))
		return false, nil
	}

	lines, err := readLines(path)
	if err != nil {
		return false, err
	}
	if err := m.WriteFile(DocFile, []byte(Format(lines))); err != nil {
		return false, err
	}
	slog.Debug("Wrote configuration document", logfields.Path(path), logfields.Count(len(lines)))
	return true, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ferrors.IOFailure("open", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ferrors.IOFailure("read", path, err)
	}
	return lines, nil
}
