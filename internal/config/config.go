// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения, например PRONOUNCE_LOG_LEVEL.
const EnvPrefix = "PRONOUNCE"

// WaveformConfig - параметры отрисовки волны.
type WaveformConfig struct {
	Height    int `mapstructure:"height" validate:"gt=0,lte=512"`
	BarWidth  int `mapstructure:"bar_width" validate:"gt=0"`
	BarGap    int `mapstructure:"bar_gap" validate:"gt=0"`
	RefreshMS int `mapstructure:"refresh_ms" validate:"gte=1,lte=1000"`
}

// RefreshRate возвращает период обновления прогресса.
func (w WaveformConfig) RefreshRate() time.Duration {
	return time.Duration(w.RefreshMS) * time.Millisecond
}

// RecorderConfig - параметры записи с микрофона.
type RecorderConfig struct {
	SampleRate      int `mapstructure:"sample_rate" validate:"oneof=8000 16000 22050 44100 48000"`
	FramesPerBuffer int `mapstructure:"frames_per_buffer" validate:"gte=64,lte=8192"`
}

// PlaybackConfig - параметры вывода звука.
type PlaybackConfig struct {
	SampleRate int `mapstructure:"sample_rate" validate:"oneof=22050 44100 48000"`
	BufferMS   int `mapstructure:"buffer_ms" validate:"gte=10,lte=1000"`
}

// Buffer возвращает размер буфера динамика.
func (p PlaybackConfig) Buffer() time.Duration {
	return time.Duration(p.BufferMS) * time.Millisecond
}

// LogConfig - параметры логирования.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Path  string `mapstructure:"path"`
}

// configData структура для сериализации.
type configData struct {
	Language      string         `mapstructure:"language" validate:"oneof=en zh es hi fr"`
	Sentence      int            `mapstructure:"sentence" validate:"gte=0,lte=9"`
	UILanguage    string         `mapstructure:"ui_language" validate:"oneof=en ru"`
	Notifications bool           `mapstructure:"notifications"`
	Hotkey        HotkeyConfig   `mapstructure:"hotkey"`
	AssetRoot     string         `mapstructure:"asset_root" validate:"required"`
	Waveform      WaveformConfig `mapstructure:"waveform"`
	Recorder      RecorderConfig `mapstructure:"recorder"`
	Playback      PlaybackConfig `mapstructure:"playback"`
	Log           LogConfig      `mapstructure:"log"`
}

// Config хранит настройки приложения.
type Config struct {
	mu             sync.RWMutex
	v              *viper.Viper
	data           configData
	configPath     string
	onHotkeyChange func(HotkeyConfig)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hotkey_key", func(fl validator.FieldLevel) bool {
		return validKey(Key(fl.Field().String()))
	})
	return v
}

// DefaultPath возвращает путь к config.json рядом с бинарником.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	// Резолвим симлинки
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Join(filepath.Dir(execPath), "config.json")
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("language", "en")
	v.SetDefault("sentence", 0)
	v.SetDefault("ui_language", "en")
	v.SetDefault("notifications", true)
	v.SetDefault("hotkey.modifiers", []string{string(ModCtrl), string(ModShift)})
	v.SetDefault("hotkey.key", "r")
	v.SetDefault("asset_root", filepath.Join(dir, "public"))
	v.SetDefault("waveform.height", 64)
	v.SetDefault("waveform.bar_width", 3)
	v.SetDefault("waveform.bar_gap", 1)
	v.SetDefault("waveform.refresh_ms", 16)
	v.SetDefault("recorder.sample_rate", 44100)
	v.SetDefault("recorder.frames_per_buffer", 1024)
	v.SetDefault("playback.sample_rate", 44100)
	v.SetDefault("playback.buffer_ms", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

// Load читает конфигурацию из path. Отсутствующий файл не ошибка: берутся
// значения по умолчанию. Переменные PRONOUNCE_* перекрывают файл.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, filepath.Dir(path))
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var data configData
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(data); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Config{v: v, data: data, configPath: path}, nil
}

// Defaults возвращает конфигурацию по умолчанию, сохраняемую в path.
func Defaults(path string) *Config {
	v := viper.New()
	setDefaults(v, filepath.Dir(path))
	v.SetConfigType("json")

	var data configData
	_ = v.Unmarshal(&data)
	return &Config{v: v, data: data, configPath: path}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	d := c.data
	mods := make([]string, len(d.Hotkey.Modifiers))
	for i, m := range d.Hotkey.Modifiers {
		mods[i] = string(m)
	}

	c.v.Set("language", d.Language)
	c.v.Set("sentence", d.Sentence)
	c.v.Set("ui_language", d.UILanguage)
	c.v.Set("notifications", d.Notifications)
	c.v.Set("hotkey.modifiers", mods)
	c.v.Set("hotkey.key", string(d.Hotkey.Key))

	// Ошибки записи не критичны: настройки останутся в памяти
	_ = c.v.WriteConfigAs(c.configPath)
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	return c.configPath
}

// Language возвращает код языка практики.
func (c *Config) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Language
}

// Sentence возвращает индекс выбранного предложения.
func (c *Config) Sentence() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Sentence
}

// SetSelection запоминает язык и предложение.
func (c *Config) SetSelection(language string, sentence int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Language = language
	c.data.Sentence = sentence
	c.save()
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.UILanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.UILanguage = lang
	c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Notifications = !c.data.Notifications
	c.save()
	return c.data.Notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Notifications
}

// Hotkey возвращает текущую горячую клавишу.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Hotkey
}

// SetHotkey устанавливает горячую клавишу.
func (c *Config) SetHotkey(hk HotkeyConfig) error {
	if err := validate.Struct(hk); err != nil {
		return fmt.Errorf("invalid hotkey %s: %w", hk, err)
	}

	c.mu.Lock()
	c.data.Hotkey = hk
	callback := c.onHotkeyChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(hk)
	}
	return nil
}

// OnHotkeyChange устанавливает callback для изменения горячей клавиши.
func (c *Config) OnHotkeyChange(fn func(HotkeyConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHotkeyChange = fn
}

// AssetRoot возвращает каталог или http(s) адрес эталонных записей.
func (c *Config) AssetRoot() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.AssetRoot
}

// Waveform возвращает параметры волны.
func (c *Config) Waveform() WaveformConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Waveform
}

// Recorder возвращает параметры записи.
func (c *Config) Recorder() RecorderConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Recorder
}

// Playback возвращает параметры воспроизведения.
func (c *Config) Playback() PlaybackConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Playback
}

// Log возвращает параметры логирования.
func (c *Config) Log() LogConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Log
}
