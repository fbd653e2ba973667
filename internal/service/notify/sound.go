// Package notify проигрывает короткий звук подтверждения распознанной команды.
package notify

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SoundNotifier проигрывает звук из файла. Пустой путь выключает уведомления.
type SoundNotifier struct {
	logger *zap.SugaredLogger
	fs     afero.Fs
	path   string
	ply    Player
}

func NewSoundNotifier(logger *zap.SugaredLogger, fs afero.Fs, path string, ply Player) *SoundNotifier {
	return &SoundNotifier{logger: logger, fs: fs, path: strings.TrimSpace(path), ply: ply}
}

// Enabled сообщает, задан ли звуковой файл.
func (n *SoundNotifier) Enabled() bool { return n != nil && n.path != "" }

// Play блокирует до конца воспроизведения. Ошибки логируются и возвращаются.
func (n *SoundNotifier) Play(ctx context.Context) error {
	if !n.Enabled() {
		return nil
	}
	if err := context.Cause(ctx); err != nil {
		return err
	}

	f, err := n.fs.Open(n.path)
	if err != nil {
		n.logger.Warnw("Failed to open notification sound", "path", n.path, "error", err)
		return err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(n.path), "."))
	if ext == "" {
		ext = "mp3"
	}
	if err := n.ply.Play(ext, f); err != nil {
		n.logger.Warnw("Failed to play notification sound", "path", n.path, "error", err)
		return err
	}
	return nil
}
