// Package prompt provides the fixed prompt templates used to build queries
package prompt

import (
	"strings"
)

// Template is a named, parameterized natural-language prompt
type Template struct {
	Name        string
	Description string
	Params      []string
	Body        string
}

// registry holds every template in display order
var registry = []Template{
	{
		Name:        "user_recent",
		Description: "Summarize a user's recent posts",
		Params:      []string{"handle", "hours"},
		Body: "Fetch the posts from X (Twitter) user {handle} over the last {hours} hours " +
			"and summarize them in the following format:\n" +
			"1. Overview of the posts (main topics and themes)\n" +
			"2. Notable posts (likely high engagement)\n" +
			"3. Overall tone and stance",
	},
	{
		Name:        "topic_search",
		Description: "Research the discussion on X about a topic",
		Params:      []string{"keyword"},
		Body: "Research the latest discussion on X (Twitter) about \"{keyword}\".\n" +
			"Include the following:\n" +
			"1. The main opinions and positions\n" +
			"2. Statements from influential users\n" +
			"3. Trends in the discussion (for/against ratio, emotional tone)\n" +
			"4. Related hashtags and keywords",
	},
	{
		Name:        "trend_analysis",
		Description: "Analyze the trend around a topic",
		Params:      []string{"topic"},
		Body: "Analyze the trend on X (Twitter) around \"{topic}\".\n" +
			"Include the following:\n" +
			"1. The current center of the conversation (what is being discussed)\n" +
			"2. The main lines of disagreement\n" +
			"3. Views of influencers and experts\n" +
			"4. Predictions for how it will develop",
	},
	{
		Name:        "thread_summary",
		Description: "Summarize a specific thread or discussion",
		Params:      []string{"url"},
		Body: "Summarize the following X (Twitter) thread or discussion:\n" +
			"{url}\n\n" +
			"Include the following:\n" +
			"1. The thread's main point\n" +
			"2. Key points (bulleted)\n" +
			"3. Notable replies and reactions\n" +
			"4. Conclusion or summary of takeaways",
	},
	{
		Name:        "comparative",
		Description: "Compare what two accounts have been saying",
		Params:      []string{"handle1", "handle2"},
		Body: "Compare and analyze the recent statements of X (Twitter) users {handle1} and {handle2}.\n" +
			"Include the following:\n" +
			"1. The main statements of each\n" +
			"2. Similarities and differences\n" +
			"3. Differences in tone and stance\n" +
			"4. Interactions between them (if any)",
	},
	{
		Name:        "sentiment",
		Description: "Run a sentiment analysis on a topic",
		Params:      []string{"keyword"},
		Body: "Analyze the sentiment on X (Twitter) toward \"{keyword}\".\n" +
			"Include the following:\n" +
			"1. Estimated positive / negative / neutral split\n" +
			"2. Representative positive opinions\n" +
			"3. Representative negative opinions\n" +
			"4. The overall direction of public opinion",
	},
	{
		Name:        "breaking_news",
		Description: "Research reactions on X to breaking news",
		Params:      []string{"keyword"},
		Body: "Research the latest reactions on X (Twitter) to \"{keyword}\".\n" +
			"Include the following:\n" +
			"1. The facts (confirmed versus unconfirmed information)\n" +
			"2. Posts from major media and official accounts\n" +
			"3. Reactions from ordinary users\n" +
			"4. Any misinformation or speculation",
	},
	{
		Name:        "freeform",
		Description: "Send a free-form query as is",
		Params:      []string{"query"},
		Body:        "{query}",
	},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, t := range registry {
		m[t.Name] = i
	}
	return m
}()

// All returns every registered template in display order
func All() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered template names in display order
func Names() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the template registered under name
func Lookup(name string) (Template, error) {
	i, ok := byName[name]
	if !ok {
		return Template{}, &NotFoundError{Name: name, Available: Names()}
	}
	return registry[i], nil
}

// Format substitutes params into the template.
// Every missing required parameter is reported before any substitution.
func (t Template) Format(params map[string]string) (string, error) {
	var missing []string
	for _, p := range t.Params {
		if _, ok := params[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return "", &MissingParamsError{Template: t.Name, Missing: missing}
	}

	pairs := make([]string, 0, len(t.Params)*2)
	for _, p := range t.Params {
		pairs = append(pairs, "{"+p+"}", params[p])
	}
	return strings.NewReplacer(pairs...).Replace(t.Body), nil
}

// Build looks up a template by name and formats it with params
func Build(name string, params map[string]string) (string, error) {
	t, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return t.Format(params)
}
