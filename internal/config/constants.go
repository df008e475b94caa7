package config

import "campaignclean/pkg/contracts"

// Application constants
const (
	AppName    = "campaignclean"
	AppVersion = contracts.Version

	// Default locations, relative to the working directory
	DefaultInputDir  = "files/input"
	DefaultOutputDir = "files/output"

	// Output file names
	ClientFileName    = "client.csv"
	CampaignFileName  = "campaign.csv"
	EconomicsFileName = "economics.csv"

	// Permissions for created directories and files
	DirPerm  = 0755
	FilePerm = 0644
)
