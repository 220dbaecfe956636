package config

// Args stores arguments which are not recognized as options of the command
type Args []string
