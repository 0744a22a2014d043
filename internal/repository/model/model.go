package model

import (
	"google.golang.org/protobuf/types/known/structpb"
	"sort"
)

type Team struct {
	Id     string `bson:"_id" json:"id"`
	ClubId string `bson:"clubId" json:"clubId"`
	Name   string `bson:"name" json:"name"`
}

func (t *Team) ToProto() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     structpb.NewStringValue(t.Id),
		"clubId": structpb.NewStringValue(t.ClubId),
		"name":   structpb.NewStringValue(t.Name),
	}}
}

// Stats are counters maintained by match tracking, passed through untouched.
type Stats struct {
	Goals         int32 `bson:"goals" json:"goals"`
	Assists       int32 `bson:"assists" json:"assists"`
	MinutesPlayed int32 `bson:"minutesPlayed" json:"minutesPlayed"`
}

type Player struct {
	Id        string  `bson:"_id" json:"id"`
	ClubId    string  `bson:"clubId" json:"clubId"`
	TeamId    string  `bson:"teamId" json:"teamId"`
	Number    *int32  `bson:"number,omitempty" json:"number,omitempty"`
	FirstName string  `bson:"firstName" json:"firstName"`
	LastName  string  `bson:"lastName" json:"lastName"`
	Nickname  *string `bson:"nickname,omitempty" json:"nickname,omitempty"`
	Position  string  `bson:"position" json:"position"`
	Stats     Stats   `bson:"stats" json:"stats"`
}

func (p *Player) ToProto() *structpb.Struct {
	number := structpb.NewNullValue()
	if p.Number != nil {
		number = structpb.NewNumberValue(float64(*p.Number))
	}
	nickname := structpb.NewNullValue()
	if p.Nickname != nil {
		nickname = structpb.NewStringValue(*p.Nickname)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":        structpb.NewStringValue(p.Id),
		"clubId":    structpb.NewStringValue(p.ClubId),
		"teamId":    structpb.NewStringValue(p.TeamId),
		"number":    number,
		"firstName": structpb.NewStringValue(p.FirstName),
		"lastName":  structpb.NewStringValue(p.LastName),
		"nickname":  nickname,
		"position":  structpb.NewStringValue(p.Position),
		"stats": structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"goals":         structpb.NewNumberValue(float64(p.Stats.Goals)),
			"assists":       structpb.NewNumberValue(float64(p.Stats.Assists)),
			"minutesPlayed": structpb.NewNumberValue(float64(p.Stats.MinutesPlayed)),
		}}),
	}}
}

// SortPlayers orders players by ascending shirt number. Players without a
// number go last; ties break on id.
func SortPlayers(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		switch {
		case a.Number == nil && b.Number == nil:
			return a.Id < b.Id
		case a.Number == nil:
			return false
		case b.Number == nil:
			return true
		case *a.Number != *b.Number:
			return *a.Number < *b.Number
		default:
			return a.Id < b.Id
		}
	})
}
