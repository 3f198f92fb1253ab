// Package audio предоставляет запись аудио с микрофона.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"pronounce/internal/asset"
	"pronounce/internal/media"
)

const (
	// Channels - количество каналов (mono).
	Channels = 1
	// DefaultSampleRate - частота дискретизации по умолчанию.
	DefaultSampleRate = 44100
	// DefaultFramesPerBuffer - размер буфера по умолчанию.
	DefaultFramesPerBuffer = 1024
	// liveSamples - сколько последних сэмплов держим для индикатора уровня.
	liveSamples = 4096
)

// Config задаёт параметры записи.
type Config struct {
	SampleRate      int
	FramesPerBuffer int
}

// Recorder записывает аудио с микрофона и превращает сессию в WAV ассет.
type Recorder struct {
	device Device
	store  *asset.Store
	cfg    Config
	log    *zap.SugaredLogger

	// период счётчика секунд, в тестах меньше
	tick time.Duration

	mu       sync.Mutex
	stream   Stream
	chunks   [][]byte
	live     []float32
	running  bool
	opening  bool
	session  uint64 // растёт при каждом Reset
	elapsed  int
	recorded asset.Locator
	done     chan struct{}
	stopTick chan struct{}
	onTick   func(int)
}

// New создаёт новый Recorder.
func New(device Device, store *asset.Store, cfg Config, log *zap.SugaredLogger) *Recorder {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.FramesPerBuffer <= 0 {
		cfg.FramesPerBuffer = DefaultFramesPerBuffer
	}
	return &Recorder{
		device: device,
		store:  store,
		cfg:    cfg,
		log:    log,
		tick:   time.Second,
	}
}

// minSamples - минимальная длина ассета (200ms), короче дополняется тишиной.
func (r *Recorder) minSamples() int {
	return r.cfg.SampleRate / 5
}

// OnTick задаёт колбэк, вызываемый при каждом изменении счётчика секунд.
func (r *Recorder) OnTick(fn func(elapsed int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onTick = fn
}

// Start открывает микрофон и начинает запись. Повторный вызов во время
// записи или открытия устройства ничего не делает.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running || r.opening {
		r.mu.Unlock()
		return nil
	}
	if err := ctx.Err(); err != nil {
		r.mu.Unlock()
		return err
	}
	r.opening = true
	session := r.session
	r.mu.Unlock()

	// Открытие может ждать разрешения ОС, IsRecording и GetSamples не блокируются.
	stream, err := r.open()

	r.mu.Lock()
	r.opening = false
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if r.session != session {
		// Reset или Close пришли во время открытия
		r.mu.Unlock()
		r.release(stream, nil)
		r.log.Infow("recording start abandoned")
		return nil
	}
	defer r.mu.Unlock()

	r.stream = stream
	r.chunks = nil
	r.live = make([]float32, 0, liveSamples)
	r.elapsed = 0
	r.running = true
	r.done = make(chan struct{})
	r.stopTick = make(chan struct{})

	go r.recordLoop(stream, r.done)
	go r.tickLoop(r.stopTick)

	r.log.Infow("recording started", "rate", r.cfg.SampleRate, "frames", r.cfg.FramesPerBuffer)
	return nil
}

// open открывает и запускает входной поток. При ошибке поток закрыт.
func (r *Recorder) open() (Stream, error) {
	stream, err := r.device.Open(float64(r.cfg.SampleRate), r.cfg.FramesPerBuffer)
	if err != nil {
		return nil, fmt.Errorf("%w: open input: %w", ErrDeviceUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("%w: start input: %w", ErrDeviceUnavailable, err)
	}
	return stream, nil
}

func (r *Recorder) recordLoop(stream Stream, done chan struct{}) {
	defer close(done)

	for {
		if !r.isCurrent(stream) {
			return
		}

		// Проверяем доступность данных
		available, err := stream.Available()
		if err != nil || available == 0 {
			if !r.isCurrent(stream) {
				return
			}
			time.Sleep(10 * time.Millisecond)
			continue
		}

		buf, err := stream.Read()
		if err != nil {
			if !r.isCurrent(stream) {
				return
			}
			r.log.Debugw("input read failed", "error", err)
			time.Sleep(10 * time.Millisecond)
			continue
		}

		chunk := media.PCM16(buf)

		r.mu.Lock()
		if r.running && r.stream == stream {
			r.chunks = append(r.chunks, chunk)
			r.live = append(r.live, buf...)
			if n := len(r.live); n > liveSamples {
				r.live = append(r.live[:0], r.live[n-liveSamples:]...)
			}
		}
		r.mu.Unlock()
	}
}

func (r *Recorder) isCurrent(stream Stream) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running && r.stream == stream
}

func (r *Recorder) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.stopTick != stop {
				r.mu.Unlock()
				return
			}
			r.elapsed++
			elapsed, fn := r.elapsed, r.onTick
			r.mu.Unlock()

			if fn != nil {
				fn(elapsed)
			}
		}
	}
}

// detachLocked завершает активную сессию и возвращает её поток и чанки.
func (r *Recorder) detachLocked() (Stream, [][]byte, chan struct{}) {
	stream, chunks, done := r.stream, r.chunks, r.done
	r.running = false
	r.stream = nil
	r.chunks = nil
	r.live = nil
	r.done = nil
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
	return stream, chunks, done
}

// release ждёт завершения recordLoop и закрывает поток.
func (r *Recorder) release(stream Stream, done chan struct{}) {
	// recordLoop проверяет running каждые 10ms
	if done != nil {
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
	}
	if stream == nil {
		return
	}
	if err := stream.Stop(); err != nil {
		r.log.Debugw("input stop failed", "error", err)
	}
	if err := stream.Close(); err != nil {
		r.log.Debugw("input close failed", "error", err)
	}
}

// Stop останавливает запись и возвращает локатор записанного ассета.
// Вне записи возвращает пустой локатор.
func (r *Recorder) Stop() (asset.Locator, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return "", nil
	}
	stream, chunks, done := r.detachLocked()
	previous := r.recorded
	r.recorded = ""
	r.mu.Unlock()

	r.release(stream, done)

	size := 0
	for _, c := range chunks {
		size += len(c)
	}
	// Добавляем тишину если запись слишком короткая
	pcm := make([]byte, 0, max(size, 2*r.minSamples()))
	for _, c := range chunks {
		pcm = append(pcm, c...)
	}
	if len(pcm) < 2*r.minSamples() {
		pcm = append(pcm, make([]byte, 2*r.minSamples()-len(pcm))...)
	}

	if previous != "" {
		if err := r.store.Release(previous); err != nil {
			r.log.Warnw("release previous recording", "locator", previous, "error", err)
		}
	}
	loc := r.store.Put(media.EncodeWAV(pcm, r.cfg.SampleRate, Channels))

	r.mu.Lock()
	r.recorded = loc
	elapsed := r.elapsed
	r.mu.Unlock()

	r.log.Infow("recording stopped", "locator", loc, "chunks", len(chunks), "bytes", size, "elapsed", elapsed)
	return loc, nil
}

// Reset освобождает записанный ассет и обнуляет счётчик. Активная сессия
// отбрасывается без создания ассета.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	var (
		stream Stream
		done   chan struct{}
	)
	if r.running {
		stream, _, done = r.detachLocked()
		r.log.Infow("recording discarded")
	}
	r.session++
	recorded := r.recorded
	r.recorded = ""
	r.elapsed = 0
	fn := r.onTick
	r.mu.Unlock()

	r.release(stream, done)

	if fn != nil {
		fn(0)
	}
	if recorded == "" {
		return nil
	}
	if err := r.store.Release(recorded); err != nil {
		return fmt.Errorf("release %s: %w", recorded, err)
	}
	return nil
}

// Close сбрасывает состояние и освобождает устройство.
func (r *Recorder) Close() error {
	if err := r.Reset(); err != nil {
		r.log.Warnw("reset on close", "error", err)
	}
	return r.device.Terminate()
}

// IsRecording возвращает true если идёт запись.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Elapsed возвращает число целых секунд текущей или последней записи.
func (r *Recorder) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

// Recorded возвращает локатор последнего записанного ассета.
func (r *Recorder) Recorded() asset.Locator {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recorded
}

// GetSamples возвращает копию последних сэмплов без остановки записи.
// Используется индикатором уровня.
func (r *Recorder) GetSamples() []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running || len(r.live) == 0 {
		return nil
	}
	samples := make([]float32, len(r.live))
	copy(samples, r.live)
	return samples
}
