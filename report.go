package fontreach

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fontreach/fontreach/wordlists"
)

// Report is the outcome of checking one word list at one design-space
// location: the words that reached lowest and highest.
type Report struct {
	// Location is the design-space point the words were measured at.
	Location *Location
	// WordList is the list that was checked.
	WordList *wordlists.WordList
	// Exemplars holds the retained extreme words.
	Exemplars Exemplars
}

// IsEmpty reports whether the check retained no words at all, e.g. because
// the font covers none of the list's script.
func (r *Report) IsEmpty() bool {
	return r.Exemplars.IsEmpty()
}

// MarshalJSON serializes the report with the location as its string form.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Location string         `json:"location"`
		WordList string         `json:"word_list"`
		Lowest   []WordExtremes `json:"lowest"`
		Highest  []WordExtremes `json:"highest"`
	}{
		Location: r.Location.String(),
		WordList: r.WordList.Name(),
		Lowest:   r.Exemplars.Lowest,
		Highest:  r.Exemplars.Highest,
	})
}

// String renders the report for terminal output: a header line followed by
// one line per exemplar, deepest and tallest first.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s @ %s\n", r.WordList.Name(), r.Location)
	if r.IsEmpty() {
		sb.WriteString("  (no measurable words)\n")
		return sb.String()
	}
	sb.WriteString("  lowest:\n")
	for _, we := range r.Exemplars.Lowest {
		fmt.Fprintf(&sb, "    %9.1f  %s\n", we.Extremes.Lowest(), we.Word)
	}
	sb.WriteString("  highest:\n")
	for _, we := range r.Exemplars.Highest {
		fmt.Fprintf(&sb, "    %9.1f  %s\n", we.Extremes.Highest(), we.Word)
	}
	return sb.String()
}
