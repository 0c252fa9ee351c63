// ABOUTME: Group preference record mapping users to their quiz answers
// ABOUTME: Preserves JSON object insertion order, which Go maps discard
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Answer is a single question/answer pair from one group member.
type Answer struct {
	Question string
	Text     string
}

// UserPreferences holds one group member's answers in the order given.
type UserPreferences struct {
	User    string
	Answers []Answer
}

// PreferenceRecord is the ordered set of group members and their answers.
// On the wire it is a JSON object of objects:
//
//	{"Ahmed": {"What's your mood?": "Light & uplifting", ...}, ...}
//
// Answer concatenation and group summaries are order-sensitive, so the
// record keeps users and answers in insertion order rather than map order.
type PreferenceRecord []UserPreferences

// Validate checks that the record has at least one user and that every
// user has at least one answer.
func (p PreferenceRecord) Validate() error {
	if len(p) == 0 {
		return errors.New("preference record has no users")
	}
	seen := make(map[string]bool, len(p))
	for _, up := range p {
		if up.User == "" {
			return errors.New("preference record has a user with an empty name")
		}
		if seen[up.User] {
			return fmt.Errorf("duplicate user %q in preference record", up.User)
		}
		seen[up.User] = true
		if len(up.Answers) == 0 {
			return fmt.Errorf("user %q has no answers", up.User)
		}
	}
	return nil
}

// CombinedText joins one user's answers into a single query string,
// answers in record order separated by ". ".
func (u UserPreferences) CombinedText() string {
	parts := make([]string, len(u.Answers))
	for i, a := range u.Answers {
		parts[i] = a.Text
	}
	return strings.Join(parts, ". ")
}

// UnmarshalJSON decodes the object-of-objects wire shape while preserving
// key order, walking the token stream instead of decoding into maps.
func (p *PreferenceRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("preference record must be a JSON object")
	}

	var record PreferenceRecord
	for dec.More() {
		userTok, err := dec.Token()
		if err != nil {
			return err
		}
		user, ok := userTok.(string)
		if !ok {
			return errors.New("preference record key is not a string")
		}

		answers, err := decodeAnswers(dec, user)
		if err != nil {
			return err
		}
		record = append(record, UserPreferences{User: user, Answers: answers})
	}

	// Consume closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = record
	return nil
}

func decodeAnswers(dec *json.Decoder, user string) ([]Answer, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("answers for user %q must be a JSON object", user)
	}

	var answers []Answer
	for dec.More() {
		qTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		question, ok := qTok.(string)
		if !ok {
			return nil, fmt.Errorf("answer key for user %q is not a string", user)
		}

		aTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		text, ok := aTok.(string)
		if !ok {
			return nil, fmt.Errorf("answer for question %q of user %q is not a string", question, user)
		}
		answers = append(answers, Answer{Question: question, Text: text})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return answers, nil
}

// MarshalJSON re-encodes the record into the object-of-objects wire shape,
// keeping insertion order in the output.
func (p PreferenceRecord) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, up := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		key, err := json.Marshal(up.User)
		if err != nil {
			return nil, err
		}
		sb.Write(key)
		sb.WriteByte(':')
		sb.WriteByte('{')
		for j, a := range up.Answers {
			if j > 0 {
				sb.WriteByte(',')
			}
			q, err := json.Marshal(a.Question)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(a.Text)
			if err != nil {
				return nil, err
			}
			sb.Write(q)
			sb.WriteByte(':')
			sb.Write(v)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}
