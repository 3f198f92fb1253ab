package audio

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// ErrDeviceUnavailable означает, что микрофон недоступен: нет устройства,
// нет разрешения или поток не удалось запустить.
var ErrDeviceUnavailable = errors.New("input device unavailable")

// Stream - открытый входной поток.
type Stream interface {
	Start() error
	// Available возвращает количество кадров, готовых к чтению.
	Available() (int, error)
	// Read читает один буфер. Возвращённый срез действителен до следующего вызова.
	Read() ([]float32, error)
	Stop() error
	Close() error
}

// Device открывает входные потоки.
type Device interface {
	Open(sampleRate float64, framesPerBuffer int) (Stream, error)
	Terminate() error
}

// PortAudioDevice - микрофон по умолчанию через PortAudio.
type PortAudioDevice struct{}

// NewPortAudioDevice инициализирует PortAudio.
func NewPortAudioDevice() (*PortAudioDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	return &PortAudioDevice{}, nil
}

// Open открывает моно поток на устройстве ввода по умолчанию.
func (d *PortAudioDevice) Open(sampleRate float64, framesPerBuffer int) (Stream, error) {
	buf := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(
		Channels,        // input channels
		0,               // output channels
		sampleRate,      // sample rate
		framesPerBuffer, // frames per buffer
		buf,             // buffer
	)
	if err != nil {
		return nil, err
	}
	return &portAudioStream{stream: stream, buf: buf}, nil
}

// Terminate освобождает PortAudio.
func (d *PortAudioDevice) Terminate() error {
	return portaudio.Terminate()
}

type portAudioStream struct {
	stream *portaudio.Stream
	buf    []float32
}

func (s *portAudioStream) Start() error            { return s.stream.Start() }
func (s *portAudioStream) Available() (int, error) { return s.stream.AvailableToRead() }
func (s *portAudioStream) Stop() error             { return s.stream.Stop() }
func (s *portAudioStream) Close() error            { return s.stream.Close() }

func (s *portAudioStream) Read() ([]float32, error) {
	if err := s.stream.Read(); err != nil {
		return nil, err
	}
	return s.buf, nil
}

// Unavailable возвращает устройство, которое всегда отказывает с err.
// Используется, когда PortAudio не удалось инициализировать.
func Unavailable(err error) Device {
	return unavailableDevice{err: err}
}

type unavailableDevice struct{ err error }

func (d unavailableDevice) Open(float64, int) (Stream, error) { return nil, d.err }
func (d unavailableDevice) Terminate() error                  { return nil }
