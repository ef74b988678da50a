package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. Keys are the English text.
const (
	msgWelcome       = "Welcome!"
	msgAskName       = "What is your name:"
	msgYourName      = "Your name is %s"
	msgStartingGear  = "You found %s (%d), and also %s (%dhp)."
	msgStartingNoAid = "You found %s (%d)."
	msgYourHealth    = "You have %dhp."
	msgEnemyAppears  = "%s meets the enemy %s (%dhp), the enemy wields %s (%d)"
	msgWhatToDo      = "What will you do?"
	msgMenuAttack    = "1. Attack"
	msgMenuSkip      = "2. Skip the turn"
	msgMenuAid       = "3. Use the aid kit"
	msgSkips         = "%s skips the turn"
	msgUsedAid       = "%s used the aid kit"
	msgNowHealth     = "Now you have %dhp"
	msgInvalid       = "Invalid input, skipping the turn"
	msgPlayerStrikes = "%s struck the enemy %s"
	msgEnemyStrikes  = "The enemy %s struck you!"
	msgHealthStatus  = "The enemy has %dhp, you have %dhp"
	msgWeaponBroken  = "Your %s is broken and deals no damage"
	msgVictory       = "You defeated %s! +%d points. Total score: %d"
	msgAidFound      = "You found %s!"
	msgPressAnyKey   = "Press any key to continue..."
	msgGameOver      = "GAME OVER"
	msgSummaryPlayer = "Player: %s"
	msgSummaryWins   = "Enemies defeated: %d"
	msgSummaryScore  = "Final score: %d"
	msgSummaryTurns  = "Turns taken: %d"
	msgInterrupted   = "The game was interrupted."
	msgThanks        = "Thanks for playing!"
)

var russian = map[string]string{
	msgWelcome:       "Добро пожаловать!",
	msgAskName:       "Как тебя зовут:",
	msgYourName:      "Ваше имя %s",
	msgStartingGear:  "Вы нашли %s (%d), а также %s (%dhp).",
	msgStartingNoAid: "Вы нашли %s (%d).",
	msgYourHealth:    "У вас %dhp.",
	msgEnemyAppears:  "%s встречает врага %s (%dhp), у врага есть оружие %s (%d)",
	msgWhatToDo:      "Что вы будете делать?",
	msgMenuAttack:    "1. Ударить",
	msgMenuSkip:      "2. Пропустить ход",
	msgMenuAid:       "3. Использовать аптечку",
	msgSkips:         "%s пропускает ход",
	msgUsedAid:       "%s использовал аптечку",
	msgNowHealth:     "Теперь у вас %dhp",
	msgInvalid:       "Неверный ввод, пропускаем ход",
	msgPlayerStrikes: "%s ударил противника %s",
	msgEnemyStrikes:  "Противник %s ударил вас!",
	msgHealthStatus:  "У противника %dhp, у вас %dhp",
	msgWeaponBroken:  "Ваше оружие %s сломано и не наносит урона",
	msgVictory:       "Вы победили %s! +%d очков. Всего очков: %d",
	msgAidFound:      "Вы нашли %s!",
	msgPressAnyKey:   "Нажмите любую клавишу для продолжения...",
	msgGameOver:      "ИГРА ОКОНЧЕНА",
	msgSummaryPlayer: "Игрок: %s",
	msgSummaryWins:   "Побеждено врагов: %d",
	msgSummaryScore:  "Финальный счет: %d",
	msgSummaryTurns:  "Ходов сделано: %d",
	msgInterrupted:   "Игра прервана.",
	msgThanks:        "Спасибо за игру!",
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range russian {
		mustSet(b, language.English, key, key)
		mustSet(b, language.Russian, key, ru)
	}
	return b
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(err)
	}
}
