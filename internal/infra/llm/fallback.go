package llm

import (
	"context"
	"strings"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
)

// FallbackModel is a deterministic responder used when no Gemini API key is
// configured. It keeps the chat feature usable in development and tests.
type FallbackModel struct{}

// NewFallbackModel creates the deterministic chat model.
func NewFallbackModel() service.ChatModel {
	return &FallbackModel{}
}

type fallbackRule struct {
	keywords []string
	reply    string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"career", "job", "work", "profession"},
		reply: "Your tenth house speaks to your professional life. Look to the placement of its " +
			"lord in your chart context above: a strong tenth lord favours steady advancement, " +
			"while an afflicted one asks for patience and deliberate effort this season.",
	},
	{
		keywords: []string{"love", "relationship", "marriage", "partner"},
		reply: "Matters of the heart sit with Venus and the seventh house. Notice where Venus " +
			"falls in your chart: its sign and nakshatra colour how you give and receive " +
			"affection, and the running dasha sets the timing for new connections.",
	},
	{
		keywords: []string{"health", "energy", "body"},
		reply: "The first and sixth houses govern vitality. A well placed Sun and Moon suggest " +
			"resilient health; when either is pressured, gentle routine and rest restore balance " +
			"faster than force.",
	},
	{
		keywords: []string{"money", "wealth", "finance"},
		reply: "Wealth flows through the second and eleventh houses. Jupiter's position in your " +
			"chart shows where abundance gathers naturally; the current dasha lord shows whether " +
			"this is a season for building or for conserving.",
	},
	{
		keywords: []string{"dasha", "period", "phase"},
		reply: "Your Vimshottari dasha timeline is drawn from the Moon's nakshatra at birth. The " +
			"running mahadasha sets the broad theme of this chapter of life, and its antardashas " +
			"shade the months within it.",
	},
}

const fallbackDefault = "Your chart holds the answer in its own quiet way. Tell me a little more " +
	"about what is on your mind, whether it is career, relationships, health or timing, and I " +
	"will read the relevant houses for you."

// Reply matches the user's message against keyword rules and returns a
// chart-flavoured canned answer.
func (m *FallbackModel) Reply(_ context.Context, _ string, _ []*entity.ChatMessage, userMessage string) (string, error) {
	lower := strings.ToLower(userMessage)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply, nil
			}
		}
	}

	return fallbackDefault, nil
}
