package widget

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/kballard/go-shellquote"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

// alert notifies the user that the countdown has expired: a desktop
// notification, the configured alert sound, and the expiry command.
func (w *Widget) alert() {
	if w.Opts.Notify {
		err := beeep.Notify(
			"Countdown finished",
			"The timer you set has expired",
			"",
		)
		if err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}

	if w.Opts.ExpirySound != "" {
		err := w.playExpirySound()
		if err != nil {
			slog.Error("unable to play alert sound", slog.Any("error", err))
		}
	}

	err := w.runExpiryCmd()
	if err != nil {
		slog.Error("unable to run expiry command", slog.Any("error", err))
	}
}

// playExpirySound decodes and plays the configured sound file, blocking
// until playback completes.
func (w *Widget) playExpirySound() error {
	f, err := os.Open(w.Opts.ExpirySound)
	if err != nil {
		return err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch filepath.Ext(w.Opts.ExpirySound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()
	speaker.Close()

	return nil
}

// runExpiryCmd executes the configured expiry command, if any.
func (w *Widget) runExpiryCmd() error {
	if w.Opts.ExpiryCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(w.Opts.ExpiryCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
