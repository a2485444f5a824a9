package grpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// convertShowToProto converts a models.ShowSummary to a proto Struct
func convertShowToProto(show models.ShowSummary) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":      structpb.NewNumberValue(float64(show.ID)),
		"name":    structpb.NewStringValue(show.Name),
		"summary": structpb.NewStringValue(show.Summary),
		"image":   structpb.NewStringValue(show.Image),
	}}
}

// convertShowFromProto converts a proto Struct back to a models.ShowSummary
func convertShowFromProto(s *structpb.Struct) models.ShowSummary {
	if s == nil {
		return models.ShowSummary{}
	}
	f := s.GetFields()
	return models.ShowSummary{
		ID:      int(f["id"].GetNumberValue()),
		Name:    f["name"].GetStringValue(),
		Summary: f["summary"].GetStringValue(),
		Image:   f["image"].GetStringValue(),
	}
}

// convertEpisodeToProto converts a models.EpisodeSummary to a proto Struct
func convertEpisodeToProto(ep models.EpisodeSummary) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     structpb.NewNumberValue(float64(ep.ID)),
		"name":   structpb.NewStringValue(ep.Name),
		"season": structpb.NewStringValue(ep.Season),
		"number": structpb.NewNumberValue(float64(ep.Number)),
	}}
}

// convertEpisodeFromProto converts a proto Struct back to a models.EpisodeSummary
func convertEpisodeFromProto(s *structpb.Struct) models.EpisodeSummary {
	if s == nil {
		return models.EpisodeSummary{}
	}
	f := s.GetFields()
	return models.EpisodeSummary{
		ID:     int(f["id"].GetNumberValue()),
		Name:   f["name"].GetStringValue(),
		Season: f["season"].GetStringValue(),
		Number: int(f["number"].GetNumberValue()),
	}
}

func convertShowsToProto(shows []models.ShowSummary) *structpb.ListValue {
	values := make([]*structpb.Value, len(shows))
	for i, show := range shows {
		values[i] = structpb.NewStructValue(convertShowToProto(show))
	}
	return &structpb.ListValue{Values: values}
}

func convertEpisodesToProto(episodes []models.EpisodeSummary) *structpb.ListValue {
	values := make([]*structpb.Value, len(episodes))
	for i, ep := range episodes {
		values[i] = structpb.NewStructValue(convertEpisodeToProto(ep))
	}
	return &structpb.ListValue{Values: values}
}

// convertShowsFromProto rejects list entries that are not structs
func convertShowsFromProto(list *structpb.ListValue) ([]models.ShowSummary, error) {
	shows := make([]models.ShowSummary, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("show %d is not a struct", i)
		}
		shows = append(shows, convertShowFromProto(s))
	}
	return shows, nil
}

func convertEpisodesFromProto(list *structpb.ListValue) ([]models.EpisodeSummary, error) {
	episodes := make([]models.EpisodeSummary, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("episode %d is not a struct", i)
		}
		episodes = append(episodes, convertEpisodeFromProto(s))
	}
	return episodes, nil
}
