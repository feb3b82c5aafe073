// Package i18n holds the on-screen text catalog and registers it with
// golang.org/x/text/message.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale.
const BaseLocale = "en-US"

// Message keys.
const (
	KeyScore     = "hud.score"
	KeyAttempts  = "hud.attempts"
	KeyTime      = "hud.time"
	KeyRound     = "hud.round"
	KeyTarget    = "hud.target"
	KeyPreview   = "hud.preview"
	KeyCorrect   = "hud.correct"
	KeyWrong     = "hud.wrong"
	KeyWon       = "banner.won"
	KeyOver      = "banner.over"
	KeyReplay    = "banner.replay"
	KeyBackToSel = "banner.select"

	KeySelectTitle    = "select.title"
	KeySelectSubtitle = "select.subtitle"
	KeySelectStart    = "select.start"
	KeySelectBack     = "select.back"
	KeyEasy           = "select.easy"
	KeyMedium         = "select.medium"
	KeyHard           = "select.hard"
	KeyEasyDesc       = "select.easy_desc"
	KeyMediumDesc     = "select.medium_desc"
	KeyHardDesc       = "select.hard_desc"

	KeyMenuTitle         = "menu.title"
	KeyMenuMemory        = "menu.memory"
	KeyMenuChallenge     = "menu.challenge"
	KeyMenuExit          = "menu.exit"
	KeyMenuMemoryDesc    = "menu.memory_desc"
	KeyMenuChallengeDesc = "menu.challenge_desc"
)

var catalogs = map[string]map[string]string{
	"en-US": {
		KeyScore:     "Score: %d/%d",
		KeyAttempts:  "Attempts: %d",
		KeyTime:      "Time: %s",
		KeyRound:     "Round: %d/%d",
		KeyTarget:    "Find: %s",
		KeyPreview:   "Memorize the cards!",
		KeyCorrect:   "Correct!",
		KeyWrong:     "Wrong!",
		KeyWon:       "You found every pair!",
		KeyOver:      "Game Over!",
		KeyReplay:    "Press 'R' to play again",
		KeyBackToSel: "Press 'M' to return to difficulty selection",

		KeySelectTitle:    "Game Difficulty",
		KeySelectSubtitle: "Select number of characters:",
		KeySelectStart:    "Start Game",
		KeySelectBack:     "Back",
		KeyEasy:           "Easy",
		KeyMedium:         "Medium",
		KeyHard:           "Hard",
		KeyEasyDesc:       "Fewer characters make the game easier to remember",
		KeyMediumDesc:     "A balanced challenge for most players",
		KeyHardDesc:       "More characters create a greater memory challenge",

		KeyMenuTitle:         "Brawl Memory",
		KeyMenuMemory:        "Memory Card Game",
		KeyMenuChallenge:     "Match Card Challenge",
		KeyMenuExit:          "Exit",
		KeyMenuMemoryDesc:    "Classic memory game! Find matching pairs of brawlers.",
		KeyMenuChallengeDesc: "Can you remember where the cards are? Find the card that matches the one shown!",
	},
	"pt-BR": {
		KeyScore:     "Pontos: %d/%d",
		KeyAttempts:  "Tentativas: %d",
		KeyTime:      "Tempo: %s",
		KeyRound:     "Rodada: %d/%d",
		KeyTarget:    "Encontre: %s",
		KeyPreview:   "Memorize as cartas!",
		KeyCorrect:   "Acertou!",
		KeyWrong:     "Errou!",
		KeyWon:       "Você encontrou todos os pares!",
		KeyOver:      "Fim de jogo!",
		KeyReplay:    "Pressione 'R' para jogar de novo",
		KeyBackToSel: "Pressione 'M' para voltar à dificuldade",

		KeySelectTitle:    "Dificuldade",
		KeySelectSubtitle: "Escolha o número de personagens:",
		KeySelectStart:    "Começar",
		KeySelectBack:     "Voltar",
		KeyEasy:           "Fácil",
		KeyMedium:         "Médio",
		KeyHard:           "Difícil",
		KeyEasyDesc:       "Menos personagens deixam o jogo mais fácil",
		KeyMediumDesc:     "Um desafio equilibrado para a maioria",
		KeyHardDesc:       "Mais personagens criam um desafio maior",

		KeyMenuTitle:         "Brawl Memory",
		KeyMenuMemory:        "Jogo da Memória",
		KeyMenuChallenge:     "Desafio de Cartas",
		KeyMenuExit:          "Sair",
		KeyMenuMemoryDesc:    "Memória clássica! Encontre os pares de lutadores.",
		KeyMenuChallengeDesc: "Lembra onde estão as cartas? Encontre a carta igual à mostrada!",
	},
}

var (
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	if err := register(); err != nil {
		panic(err)
	}
}

// register installs every catalog with x/text/message, also under the base
// language so "pt" resolves to "pt-BR".
func register() error {
	locales := Locales()
	supported = supported[:0]
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "und" {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for key, msg := range catalogs[locale] {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, msg); err != nil {
					return fmt.Errorf("register %s %s: %w", locale, key, err)
				}
			}
		}
		if locale == BaseLocale {
			supported = append([]language.Tag{tag}, supported...)
			continue
		}
		supported = append(supported, tag)
	}
	matcher = language.NewMatcher(supported)
	return nil
}

// Locales returns the catalog locales in sorted order.
func Locales() []string {
	out := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns every message key of the base locale.
func Keys() []string {
	out := make([]string, 0, len(catalogs[BaseLocale]))
	for key := range catalogs[BaseLocale] {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// ParseTag resolves value to the closest supported tag. An empty value
// selects the base locale.
func ParseTag(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return supported[0], nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", value, err)
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx], nil
}

// Printer formats catalog messages for one language.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

// T formats the message stored under key.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
