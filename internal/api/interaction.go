package api

import (
	"time" // Publication and vote timestamps

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"     // Importing domain models
	"github.com/MarcoPr4do/Neighlink-Backend/internal/middleware" // Per-request services and principal
	"github.com/MarcoPr4do/Neighlink-Backend/internal/response"   // Response envelope

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// NewsRequest is the body for publishing or editing news
type NewsRequest struct {
	Title       string `json:"title" binding:"required"` // Headline
	Description string `json:"description"`              // Body
}

// PollRequest is the body for creating or editing a poll
type PollRequest struct {
	Title       string    `json:"title" binding:"required"` // Question
	Description string    `json:"description"`              // Details
	StartDate   time.Time `json:"startDate"`                // Voting opens
	EndDate     time.Time `json:"endDate"`                  // Voting closes
}

// OptionRequest is the body for adding an option to a poll
type OptionRequest struct {
	Description string `json:"description" binding:"required"` // Option text
}

// OptionResidentRequest is the body a resident votes with
type OptionResidentRequest struct {
	OptionID uint   `json:"optionId" binding:"required"` // Chosen option
	Comment  string `json:"comment"`                     // Free-text comment
}

// GetNewsHandler lists a condominium's active news
func GetNewsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		news, err := middleware.ServicesFrom(c).News.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list news", err)
			return
		}
		response.Write(c, response.Ok(news))
	}
}

// CreateNewsHandler publishes news in a condominium
func CreateNewsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req NewsRequest
		if !bindBody(c, &req) {
			return
		}
		news := &domain.News{
			CondominiumID: condominiumID,   // Parent condominium
			Title:         req.Title,       // Headline
			Description:   req.Description, // Body
			Date:          time.Now(),      // Published now
			IsDelete:      false,           // Active
		}
		saved, err := middleware.ServicesFrom(c).News.Insert(news)
		if err != nil {
			fail(c, "failed to create news", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// UpdateNewsHandler overwrites a news item's title and body
func UpdateNewsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		newsID, ok := idParam(c, "newsId")
		if !ok {
			return
		}
		var req NewsRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		news, err := svc.News.GetByID(newsID)
		if err != nil {
			failLookup(c, "failed to update news", err)
			return
		}
		news.Title = req.Title
		news.Description = req.Description
		saved, err := svc.News.Update(news)
		if err != nil {
			fail(c, "failed to update news", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeleteNewsHandler soft-deletes a news item
func DeleteNewsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		newsID, ok := idParam(c, "newsId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		news, err := svc.News.GetByID(newsID)
		if err != nil {
			failLookup(c, "failed to delete news", err)
			return
		}
		news.IsDelete = true
		if _, err := svc.News.Update(news); err != nil {
			fail(c, "failed to delete news", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetPollsHandler lists a condominium's active polls
func GetPollsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		polls, err := middleware.ServicesFrom(c).Polls.GetAllByCondominium(condominiumID)
		if err != nil {
			fail(c, "failed to list polls", err)
			return
		}
		response.Write(c, response.Ok(polls))
	}
}

// CreatePollHandler opens a poll on behalf of the calling administrator
func CreatePollHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		condominiumID, ok := idParam(c, "condominiumId")
		if !ok {
			return
		}
		var req PollRequest
		if !bindBody(c, &req) {
			return
		}
		admin := middleware.PrincipalFrom(c).Administrator // Guaranteed by the route policy
		poll := &domain.Poll{
			AdministratorID: admin.ID,        // Creating administrator
			CondominiumID:   condominiumID,   // Parent condominium
			Title:           req.Title,       // Question
			Description:     req.Description, // Details
			StartDate:       req.StartDate,   // Voting opens
			EndDate:         req.EndDate,     // Voting closes
			IsDelete:        false,           // Active
		}
		saved, err := middleware.ServicesFrom(c).Polls.Insert(poll)
		if err != nil {
			fail(c, "failed to create poll", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"administrator_id": admin.ID,      // Creator
			"condominium_id":   condominiumID, // Parent condominium
			"poll_id":          saved.ID,      // New poll
		}).Info("Poll created")
		response.Write(c, response.Ok(saved))
	}
}

// UpdatePollHandler overwrites a poll's editable fields
func UpdatePollHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		var req PollRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		poll, err := svc.Polls.GetByID(pollID)
		if err != nil {
			failLookup(c, "failed to update poll", err)
			return
		}
		poll.Title = req.Title
		poll.Description = req.Description
		poll.StartDate = req.StartDate
		poll.EndDate = req.EndDate
		saved, err := svc.Polls.Update(poll)
		if err != nil {
			fail(c, "failed to update poll", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// DeletePollHandler soft-deletes a poll
func DeletePollHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		poll, err := svc.Polls.GetByID(pollID)
		if err != nil {
			failLookup(c, "failed to delete poll", err)
			return
		}
		poll.IsDelete = true
		if _, err := svc.Polls.Update(poll); err != nil {
			fail(c, "failed to delete poll", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}

// GetOptionsHandler lists a poll's active options
func GetOptionsHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		options, err := middleware.ServicesFrom(c).Options.GetAllByPoll(pollID)
		if err != nil {
			fail(c, "failed to list options", err)
			return
		}
		response.Write(c, response.Ok(options))
	}
}

// CreateOptionHandler adds an option to an existing poll
func CreateOptionHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		var req OptionRequest
		if !bindBody(c, &req) {
			return
		}
		svc := middleware.ServicesFrom(c)
		if _, err := svc.Polls.GetByID(pollID); err != nil {
			failLookup(c, "failed to create option", err)
			return
		}
		saved, err := svc.Options.Insert(&domain.Option{PollID: pollID, Description: req.Description})
		if err != nil {
			fail(c, "failed to create option", err)
			return
		}
		response.Write(c, response.Ok(saved))
	}
}

// GetResponsesHandler lists the votes cast on a poll
func GetResponsesHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		responses, err := middleware.ServicesFrom(c).GetResponsesByPoll(pollID)
		if err != nil {
			fail(c, "failed to list responses", err)
			return
		}
		response.Write(c, response.Ok(responses))
	}
}

// CreateResponseHandler records the calling resident's vote
func CreateResponseHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		pollID, ok := idParam(c, "pollId")
		if !ok {
			return
		}
		var req OptionResidentRequest
		if !bindBody(c, &req) {
			return
		}
		resident := middleware.PrincipalFrom(c).Resident // Guaranteed by the route policy
		svc := middleware.ServicesFrom(c)
		option, err := svc.Options.GetByID(req.OptionID)
		if err != nil {
			failLookup(c, "failed to record response", err)
			return
		}
		if option.PollID != pollID || option.IsDelete {
			response.Write(c, response.NotFound()) // Only live options of this poll take votes
			return
		}
		vote := &domain.OptionResident{
			OptionID:       req.OptionID,    // Chosen option
			ResidentID:     resident.ID,     // Voting resident
			ResidentUserID: resident.UserID, // Voting resident's user
			Comment:        req.Comment,     // Free-text comment
			Date:           time.Now(),      // Cast now
			IsDelete:       false,           // Active
		}
		saved, err := svc.OptionResidents.Insert(vote)
		if err != nil {
			fail(c, "failed to record response", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"resident_id": resident.ID,  // Voter
			"option_id":   req.OptionID, // Chosen option
		}).Info("Poll response recorded")
		response.Write(c, response.Ok(saved))
	}
}

// DeleteResponseHandler soft-deletes a vote
func DeleteResponseHandler(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		responseID, ok := idParam(c, "responseId")
		if !ok {
			return
		}
		svc := middleware.ServicesFrom(c)
		vote, err := svc.OptionResidents.GetByID(responseID)
		if err != nil {
			failLookup(c, "failed to delete response", err)
			return
		}
		vote.IsDelete = true
		if _, err := svc.OptionResidents.Update(vote); err != nil {
			fail(c, "failed to delete response", err)
			return
		}
		response.Write(c, response.Ok(nil))
	}
}
