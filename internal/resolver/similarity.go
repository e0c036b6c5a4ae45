package resolver

import (
	"regexp"
	"strings"
)

var (
	punctPattern  = regexp.MustCompile(`[^\w\s&]`)
	spacesPattern = regexp.MustCompile(`\s+`)

	suffixWords = map[string]bool{
		"limited": true, "ltd": true, "pvt": true, "private": true,
		"corporation": true, "corp": true, "company": true, "co": true,
		"inc": true, "incorporated": true, "plc": true,
	}
)

// normalize canonicalizes free text for matching: lower-case, punctuation
// folded to spaces, trailing corporate suffix words dropped.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = punctPattern.ReplaceAllString(s, " ")
	s = spacesPattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	words := strings.Fields(s)
	for len(words) > 1 && suffixWords[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// wordMatchScore scores a query whose words all appear in the alias.
// Extra alias words dilute the score slightly so tighter aliases win.
func wordMatchScore(query, alias string) float64 {
	qWords := strings.Fields(query)
	aWords := strings.Fields(alias)
	if len(qWords) == 0 || len(aWords) == 0 {
		return 0
	}
	aSet := make(map[string]bool, len(aWords))
	for _, w := range aWords {
		aSet[w] = true
	}
	for _, w := range qWords {
		if !aSet[w] {
			return 0
		}
	}
	extra := len(aWords) - len(qWords)
	if extra < 0 {
		extra = 0
	}
	return 0.95 - 0.05*float64(extra)/float64(len(aWords))
}

// prefixScore rewards a query that is a prefix of the alias or vice versa.
func prefixScore(query, alias string) float64 {
	if len(query) < 3 {
		return 0
	}
	if strings.HasPrefix(alias, query) || strings.HasPrefix(query, alias) {
		return 0.85
	}
	return 0
}

// similarityRatio is the classic edit-distance ratio: 1 - d/maxLen.
// Scores at or below 0.7 are treated as noise and discarded.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	max := la
	if lb > max {
		max = lb
	}
	r := 1 - float64(levenshtein(a, b))/float64(max)
	if r <= 0.7 {
		return 0
	}
	return r
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
