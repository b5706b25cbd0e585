package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Color palettes for different themes
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Gruvbox Dark color palette (warm, muted, easy on eyes)
type gruvboxColors struct {
	fg       string
	aqua     string
	orange   string
	yellow   string
	green    string
	blue     string
	red      string
	redBg    string
	yellowBg string
}

var gruvbox = gruvboxColors{
	fg:       "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	aqua:     "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	orange:   "\x1b[38;5;208m", // Warm orange (#fe8019)
	yellow:   "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	green:    "\x1b[38;5;142m", // Muted green (#b8bb26)
	blue:     "\x1b[38;5;109m", // Soft blue (#83a598)
	red:      "\x1b[38;5;167m", // Warm red (#fb4934)
	redBg:    "\x1b[48;5;88m",  // Dark red background
	yellowBg: "\x1b[48;5;58m",  // Dark yellow background
}

// Everforest Dark color palette (natural forest greens)
type everforestColors struct {
	fg        string
	green     string
	greenMid  string
	greenDeep string
	orange    string
	yellow    string
	red       string
	redBg     string
	yellowBg  string
}

var everforest = everforestColors{
	fg:        "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	green:     "\x1b[38;5;108m", // Bright green (#a7c080)
	greenMid:  "\x1b[38;5;107m", // Mid green (#83c092)
	greenDeep: "\x1b[38;5;65m",  // Deep green (#7fbbb3)
	orange:    "\x1b[38;5;208m", // Warm orange (#e69875)
	yellow:    "\x1b[38;5;179m", // Soft yellow (#dbbc7f)
	red:       "\x1b[38;5;167m", // Warm red (#e67e80)
	redBg:     "\x1b[48;5;52m",  // Dark red background
	yellowBg:  "\x1b[48;5;58m",  // Dark yellow background
}

// Current active theme (set by Initialize from the environment)
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

func colorTime() string {
	if currentTheme == "everforest" {
		return everforest.greenMid
	}
	return gruvbox.aqua
}

func colorComponent(name string) string {
	// Hash for consistent color per component
	hash := 0
	for _, c := range name {
		hash += int(c)
	}

	if currentTheme == "everforest" {
		if hash%3 == 0 {
			return everforest.green
		} else if hash%3 == 1 {
			return everforest.greenDeep
		}
		return everforest.orange
	}

	if hash%2 == 0 {
		return gruvbox.orange
	}
	return gruvbox.yellow
}

func colorFg() string {
	if currentTheme == "everforest" {
		return everforest.fg
	}
	return gruvbox.fg
}

func colorValue() string {
	if currentTheme == "everforest" {
		return everforest.green
	}
	return gruvbox.blue
}

func colorWarn() (string, string) {
	if currentTheme == "everforest" {
		return everforest.yellow, everforest.yellowBg
	}
	return gruvbox.yellow, gruvbox.yellowBg
}

func colorError() (string, string) {
	if currentTheme == "everforest" {
		return everforest.red, everforest.redBg
	}
	return gruvbox.red, gruvbox.redBg
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  r.store  Stored trait declaration  Person"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
	buf             *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	// Create a base JSON encoder for field serialization (internal use only)
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	// Time: theme-aware color
	final.AppendString(colorTime())
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR with bold + background
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	// Component name (abbreviated): theme-aware color for visual grouping
	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	// Message
	final.AppendString("  ")
	final.AppendString(colorFg())
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	// Fields: compact values only
	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(extractFieldValues(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	warnColor, warnBg := colorWarn()
	errColor, errBg := colorError()

	switch level {
	case zapcore.WarnLevel:
		return colorBold + warnBg + warnColor + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + errBg + errColor + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + errBg + errColor + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: registry -> r, registry.store -> r.store
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// getFieldValue extracts the value from a zap field, handling different field types
func getFieldValue(field zapcore.Field) string {
	if field.Type == zapcore.StringType {
		return field.String
	}

	if field.Type == zapcore.Int64Type || field.Type == zapcore.Int32Type ||
		field.Type == zapcore.Int16Type || field.Type == zapcore.Int8Type ||
		field.Type == zapcore.Uint64Type || field.Type == zapcore.Uint32Type ||
		field.Type == zapcore.Uint16Type || field.Type == zapcore.Uint8Type {
		return fmt.Sprintf("%d", field.Integer)
	}

	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}

	return ""
}

// extractFieldValues pulls just the values from structured fields.
// Input: {"name": "Person", "fields": 4, "duration_ms": 2}
// Output: "Person (4 fields) 2ms" with colored values.
func extractFieldValues(fields []zapcore.Field) string {
	var values []string

	for _, field := range fields {
		val := getFieldValue(field)
		if val == "" {
			continue
		}
		switch field.Key {
		case FieldName, FieldTypeName, FieldPath:
			values = append(values, colorValue()+val+colorReset)
		case FieldNumFields, FieldNumTypes, FieldNumPaths, FieldAttributes, FieldSupertraits:
			values = append(values, colorFg()+"("+colorValue()+val+colorReset+colorFg()+" "+field.Key+")"+colorReset)
		case FieldDurationMS:
			values = append(values, colorValue()+val+colorReset+"ms")
		default:
			// Unknown fields keep their key so nothing is silently dropped
			values = append(values, colorFg()+field.Key+"="+colorReset+colorValue()+val+colorReset)
		}
	}

	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, " ")
}
