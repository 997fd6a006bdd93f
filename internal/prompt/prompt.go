// Package prompt assembles the instruction sent to a generation backend for
// one refill of Articulate words.
package prompt

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

// System is the standing instruction describing the game, the category rules
// and the required output envelope.
const System = `**Objective**: Create customized "Articulate" game cards tailored to a specific group of players.

**Background**: "Articulate" is a party game where players describe a word without saying the word itself. Cards have six categories: Object, Nature, Random, Person, Action and World. Words should resonate with the players' ages, interests and backgrounds so everyone can take part.

**Input**
- Age range: the players' ages. Use it to set difficulty and cultural references.
- Interests: topics the players care about.
- Backgrounds: cultural or educational context, so words stay accessible.
- Used words: words already played, per category. Never repeat any of them.
- Amount: how many words to produce for each category.

**How to choose words**
1. Relevance: younger groups lean towards current pop culture, older groups towards classic or historical references. Mix in general knowledge suited to the ages.
2. Specificity: within an interest pick iconic, unique items instead of generic ones. For "video games" prefer a famous character or item over "Controller".
3. Balance: mix easy and hard words; avoid anything too obscure for the group.
4. No padding: "Duff Beer Can" should be "Duff Beer"; "Food marathon" should be "Mukbang". Do not glue a generic noun onto a specific term.

**Category rules**
- Object: tangible items or distinct concepts ("Microscope", "Blockchain"). No broad terms like "Technology".
- Nature: flora, fauna, landforms and natural phenomena ("Coral Reef", "Blue Whale"). Man-made things only when tied to observing nature ("Telescope").
- Random: anything that does not fit elsewhere; cultural, historical or whimsical ("Wigwam").
- Person: real or fictional people and roles that can be described by what they did ("Ada Lovelace").
- Action: one word or hyphenated verb forms ending in "-ing" ("Programming", "Base-jumping"). No long phrases.
- World: countries, cities, landmarks, cuisines, customs and global issues ("Sushi", "Amazon Rainforest").

Words must be clear enough to describe and guess within one game turn.

**Output**
Reply with the words in exactly this JSON structure, wrapped in the --BEGIN JSON-- and --END JSON-- tags:

--BEGIN JSON--
{
    "success": true,
    "message": "Words generated based on player demographics and interests",
    "data": {
        "Object": ["word1", "word2"],
        "Nature": ["word1", "word2"],
        "Random": ["word1", "word2"],
        "Person": ["word1", "word2"],
        "Action": ["word1", "word2"],
        "World": ["word1", "word2"]
    }
}
--END JSON--

Always include both tags; the reply is parsed by a program.`

// User renders the per-refill message: who is playing, what was already
// played and how many words are wanted.
func User(req domain.GenerationRequest) string {
	ages := make([]string, len(req.Profile.Ages))
	for i, a := range req.Profile.Ages {
		ages[i] = strconv.Itoa(a)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Age range: %s\n", strings.Join(ages, ", "))
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Profile.Interests, ", "))
	fmt.Fprintf(&b, "Backgrounds: %s\n", strings.Join(req.Profile.Backgrounds, ", "))
	fmt.Fprintf(&b, "Used words: %s\n", usedWords(req.Used))
	fmt.Fprintf(&b, "Amount: %d words for each category", req.Amount)
	return b.String()
}

// usedWords encodes history as a JSON object with every category present.
func usedWords(used map[domain.Category][]string) string {
	m := make(map[string][]string, len(used))
	for _, c := range domain.Categories() {
		words := slices.Clone(used[c])
		if words == nil {
			words = []string{}
		}
		slices.Sort(words)
		m[string(c)] = words
	}
	// Marshalling map[string][]string cannot fail.
	out, _ := json.Marshal(m)
	return string(out)
}
