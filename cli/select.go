package cli

import (
	"slices"
	"strings"

	"github.com/amp-labs/objectgraph/hashing"
	"github.com/amp-labs/objectgraph/set"
	"github.com/manifoldco/promptui"
)

const doneItem = "[Done]"

// Select asks the user to pick one of choices and returns it.
func Select(label string, choices ...string) (string, error) {
	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices, false),
	}

	_, value, err := sel.Run()

	return value, err
}

// MultiSelect lets the user pick any number of choices, one at a time, until
// they pick [Done]. The result keeps the order of choices.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	selected, err := set.Strings(hashing.Sha256)
	if err != nil {
		return nil, err
	}

	remaining := slices.Clone(choices)

	for len(remaining) > 0 {
		items := append([]string{doneItem}, remaining...)

		sel := &promptui.Select{
			Label:    label,
			Items:    items,
			Searcher: prefixSearcher(items, true),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		if err := selected.Add(hashing.HashableString(value)); err != nil {
			return nil, err
		}

		remaining = slices.DeleteFunc(remaining, func(s string) bool {
			return s == value
		})
	}

	return pick(choices, selected)
}

func pick(choices []string, selected set.OrderedSet[hashing.HashableString]) ([]string, error) {
	var out []string

	for _, c := range choices {
		contains, err := selected.Contains(hashing.HashableString(c))
		if err != nil {
			return nil, err
		}

		if contains {
			out = append(out, c)
		}
	}

	return out, nil
}

// prefixSearcher matches items by prefix. With skipFirst the first item
// (the [Done] entry) never matches a search.
func prefixSearcher(items []string, skipFirst bool) func(input string, index int) bool {
	return func(input string, index int) bool {
		if skipFirst && index == 0 {
			return false
		}

		if len(input) == 0 {
			return false
		}

		return strings.HasPrefix(items[index], input)
	}
}
