package history

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/darkkaiser/slack-notify-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Normal String",
			input:    "DeployAlerts",
			expected: "deploy-alerts",
		},
		{
			name:     "With Spaces",
			input:    "Channel Name With Spaces",
			expected: "channel-name-with-spaces",
		},
		{
			name:     "With Underscores",
			input:    "ops_critical_alerts",
			expected: "ops-critical-alerts",
		},
		{
			name:     "Path Traversal (DotDot)",
			input:    "../Secret",
			expected: "---secret", // ../ -> --/ -> --- + secret
		},
		{
			name:     "Path Separators",
			input:    "dir/file\\name",
			expected: "dir-file-name",
		},
		{
			name:     "Windows Reserved Chars",
			input:    `Key<|>"?*`,
			expected: "key------",
		},
		{
			name:     "Mixed Complex Case",
			input:    `My..Cool/Channel\Name <V2>`,
			expected: "my--cool-channel-name--v-2-",
		},
		{
			name:     "Already Kebab",
			input:    "already-kebab-case",
			expected: "already-kebab-case",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTruncateByBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "Under Limit",
			input:    "short",
			limit:    10,
			expected: "short",
		},
		{
			name:     "Exact Limit",
			input:    "exact",
			limit:    5,
			expected: "exact",
		},
		{
			name:     "Over Limit (ASCII)",
			input:    "loooooooooong",
			limit:    5,
			expected: "loooo",
		},
		{
			name:     "Multi-byte (Korean)",
			input:    "안녕하세요", // 3 bytes per char
			limit:    6,       // 2 chars = 6 bytes
			expected: "안녕",
		},
		{
			name:     "Multi-byte Cut in Middle",
			input:    "안녕하세요", // 3 * 5 = 15 bytes
			limit:    7,       // Try to cut at 7 (2 chars + 1 byte)
			expected: "안녕",    // Should drop the partial char
		},
		{
			name:     "Empty String",
			input:    "",
			limit:    10,
			expected: "",
		},
		{
			name:     "Emoji",
			input:    "🚀Rock", // 🚀 is 4 bytes
			limit:    5,
			expected: "🚀R",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateByBytes(tt.input, tt.limit)
			assert.Equal(t, tt.expected, result)
			assert.LessOrEqual(t, len(result), tt.limit)
			assert.True(t, utf8.ValidString(result), "Result must be valid UTF-8")
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	t.Run("Format Check", func(t *testing.T) {
		channelID := contract.ChannelID("DeployAlerts")

		filename := generateFilename(channelID)

		// Expected format: channel-{sanitized-name}-{16hex}.json
		matched, err := regexp.MatchString(`^channel-deploy-alerts-[0-9a-f]{16}\.json$`, filename)
		assert.NoError(t, err)
		assert.True(t, matched, "Filename %s does not match expected format", filename)
	})

	t.Run("Deterministic", func(t *testing.T) {
		f1 := generateFilename("ops-alerts")
		f2 := generateFilename("ops-alerts")

		assert.Equal(t, f1, f2, "Same channel ID must always produce the same filename")
	})

	t.Run("Collision Avoidance (Kebab Case Collision)", func(t *testing.T) {
		// "Ops_Alerts" -> "ops-alerts"
		// "Ops-Alerts" -> "ops-alerts"
		// These sanitize to same string, but hash source is the original ID.
		f1 := generateFilename("Ops_Alerts")
		f2 := generateFilename("Ops-Alerts")

		assert.NotEqual(t, f1, f2, "Filenames must be different due to hash of original IDs")
		// Yet prefix part should be same
		parts1 := strings.Split(f1, "-")
		parts2 := strings.Split(f2, "-")
		// channel-ops-alerts-{hash}.json
		// parts: [channel, ops, alerts, {hash}.json]
		// Verify the readable parts are identical
		assert.Equal(t, parts1[:3], parts2[:3], "Readable parts should be identical")
	})

	t.Run("Collision Avoidance (Case Insensitive Filesystem)", func(t *testing.T) {
		// Windows/macOS는 대소문자를 구분하지 않으므로 정제된 이름만으로는 충돌할 수 있지만,
		// 해시는 원본 ID 기준이므로 파일명 전체는 달라야 한다.
		f1 := generateFilename("Alerts")
		f2 := generateFilename("alerts")

		assert.NotEqual(t, f1, f2)
	})

	t.Run("Length Limit Enforcement", func(t *testing.T) {
		longStr := strings.Repeat("A", 200)
		channelID := contract.ChannelID(longStr)

		filename := generateFilename(channelID)

		t.Logf("Generated Filename Length: %d", len(filename))

		// Max length calculation:
		// "channel-" (8) + Name(80) + "-" (1) + Hash(16) + ".json" (5)
		// Total max = 110
		assert.LessOrEqual(t, len(filename), 110)
	})
}
