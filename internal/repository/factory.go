package repository

import (
	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/employee"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/user"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	repo "github.com/shama2369/trichygold-campaignsc/internal/repository/mongo"
)

func NewCounterRepository(client *mongodb.Client, log *logger.Logger) tag.CounterRepository {
	return repo.NewCounterRepository(client, log)
}

func NewCampaignRepository(client *mongodb.Client, log *logger.Logger) campaign.Repository {
	return repo.NewCampaignRepository(client, log)
}

func NewEmployeeRepository(client *mongodb.Client, log *logger.Logger) employee.Repository {
	return repo.NewEmployeeRepository(client, log)
}

func NewUserRepository(client *mongodb.Client, log *logger.Logger) user.Repository {
	return repo.NewUserRepository(client, log)
}

func NewRoleRepository(client *mongodb.Client, log *logger.Logger) role.Repository {
	return repo.NewRoleRepository(client, log)
}
