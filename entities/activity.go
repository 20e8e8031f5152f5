package entities

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Activity is the struct to store an activity and its roster
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the number of places still available in the activity
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Activities is an ordered collection of activities keyed by name.
// The order is the key order of the JSON object it was decoded from.
type Activities []Activity

// Get returns the activity with the given name
func (a Activities) Get(name string) (Activity, bool) {
	for _, activity := range a {
		if activity.Name == name {
			return activity, true
		}
	}
	return Activity{}, false
}

// Names returns the names of the activities in order
func (a Activities) Names() []string {
	names := make([]string, 0, len(a))
	for _, activity := range a {
		names = append(names, activity.Name)
	}
	return names
}

// activityFields is the wire form of an activity. Participants is a pointer
// so a missing or null list can be told apart from an empty one.
type activityFields struct {
	Description     string    `json:"description"`
	Schedule        string    `json:"schedule"`
	MaxParticipants int       `json:"max_participants"`
	Participants    *[]string `json:"participants"`
}

// UnmarshalJSON decodes a JSON object of name -> activity keeping the key order.
// A repeated key keeps the position of its first occurrence and the value of its last.
// Every activity must be an object with a participants list.
func (a *Activities) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return errors.New("activities must be a JSON object")
	}

	activities := Activities{}
	positions := map[string]int{}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		if iter.WhatIsNext() != jsoniter.ObjectValue {
			iter.ReportError("decode activity", fmt.Sprintf("activity %q is not an object", name))
			return false
		}

		var fields activityFields
		iter.ReadVal(&fields)
		if iter.Error != nil {
			return false
		}
		if fields.Participants == nil {
			iter.ReportError("decode activity", fmt.Sprintf("activity %q has no participants", name))
			return false
		}

		activity := Activity{
			Name:            name,
			Description:     fields.Description,
			Schedule:        fields.Schedule,
			MaxParticipants: fields.MaxParticipants,
			Participants:    *fields.Participants,
		}
		if pos, exists := positions[name]; exists {
			activities[pos] = activity
		} else {
			positions[name] = len(activities)
			activities = append(activities, activity)
		}
		return true
	})
	if iter.Error != nil {
		return errors.Wrap(iter.Error, "could not decode activities")
	}

	*a = activities
	return nil
}

// MarshalJSON encodes the activities as a JSON object in collection order
func (a Activities) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, activity := range a {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(activity.Name)
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		stream.WriteVal(activity)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "could not encode activities")
	}

	return append([]byte(nil), stream.Buffer()...), nil
}
