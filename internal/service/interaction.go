package service

import (
	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models
)

// NewsService manages news
type NewsService struct{ Store[domain.News] }

// GetAllByCondominium lists a condominium's active news
func (s NewsService) GetAllByCondominium(condominiumID uint) ([]domain.News, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// PollService manages polls
type PollService struct{ Store[domain.Poll] }

// GetAllByCondominium lists a condominium's active polls
func (s PollService) GetAllByCondominium(condominiumID uint) ([]domain.Poll, error) {
	return s.listActive("condominium_id = ?", condominiumID)
}

// OptionService manages poll options
type OptionService struct{ Store[domain.Option] }

// GetAllByPoll lists a poll's active options
func (s OptionService) GetAllByPoll(pollID uint) ([]domain.Option, error) {
	return s.listActive("poll_id = ?", pollID)
}

// OptionResidentService manages residents' votes
type OptionResidentService struct{ Store[domain.OptionResident] }

// GetAllByOptions lists the active votes cast for any of optionIDs.
func (s OptionResidentService) GetAllByOptions(optionIDs []uint) ([]domain.OptionResident, error) {
	if len(optionIDs) == 0 {
		return []domain.OptionResident{}, nil // Nothing to match
	}
	return s.listActive("option_id IN ?", optionIDs)
}

// GetResponsesByPoll collects the votes cast on a poll's active options.
func (s *Services) GetResponsesByPoll(pollID uint) ([]domain.OptionResident, error) {
	options, err := s.Options.GetAllByPoll(pollID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID) // Collect option ids
	}
	return s.OptionResidents.GetAllByOptions(ids)
}
