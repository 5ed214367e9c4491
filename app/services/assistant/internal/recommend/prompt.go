package recommend

import (
	"fmt"
	"strings"

	"ScentyAI/app/dal/catalog"
)

// EmptyCatalogReply is the user-visible text for a completely empty catalog.
// It short-circuits the completion call on the free-text path.
const EmptyCatalogReply = "Каталог временно пуст. Мы работаем над ароматами ✨"

const promptInstruction = "Выбери из этого списка 1 свечу, которая лучше всего подойдёт. " +
	"Ответь красиво, коротко (до 2 предложений), с упоминанием названия свечи и атмосферы, которую она создаёт."

// EmptyTagReply is the user-visible text when no candle carries the tag.
func EmptyTagReply(tag string) string {
	return fmt.Sprintf("В каталоге пока нет подходящих свечей для %s 😔", tag)
}

// BuildTaggedPrompt assembles the completion request body for a tag-filtered
// candidate set: one line per candle in input order, the user's message, and
// the pick-one instruction. An empty candidate set yields EmptyTagReply
// instead, which is final user-visible text, not a prompt.
func BuildTaggedPrompt(tag, userMessage string, items []*catalog.Candles) string {
	if len(items) == 0 {
		return EmptyTagReply(tag)
	}

	var sb strings.Builder
	sb.WriteString("Вот свечи из каталога, которые подходят по описанию:\n")
	writeItemLines(&sb, items)
	sb.WriteString("\n\nПользователь: ")
	sb.WriteString(userMessage)
	sb.WriteString("\n\n")
	sb.WriteString(promptInstruction)
	return sb.String()
}

// BuildCatalogPrompt renders the whole catalog without an instruction suffix.
// Used on the free-text path, where the caller appends the user message.
func BuildCatalogPrompt(items []*catalog.Candles) string {
	if len(items) == 0 {
		return EmptyCatalogReply
	}

	var sb strings.Builder
	sb.WriteString("Вот наш каталог ароматных свечей:\n")
	writeItemLines(&sb, items)
	return sb.String()
}

// Output grows linearly with the catalog; no size cap is applied here.
func writeItemLines(sb *strings.Builder, items []*catalog.Candles) {
	for _, c := range items {
		sb.WriteString("- ")
		sb.WriteString(c.Title)
		sb.WriteString(" — ")
		sb.WriteString(c.Notes)
		sb.WriteString(". ")
		// An absent description renders as nothing, never as a placeholder.
		if c.Description.Valid {
			sb.WriteString(c.Description.String)
		}
		sb.WriteString("\n")
	}
}
