package config

// Config is the root application configuration.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Chef ChefConfig `yaml:"chef"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ChefConfig holds conversion run settings.
type ChefConfig struct {
	SourceDir        string `yaml:"source_dir"        env:"CHEF_SOURCE_DIR"        env-default:"chefdata/source"`
	TreesDir         string `yaml:"trees_dir"         env:"CHEF_TREES_DIR"         env-default:"chefdata/trees"`
	CurationPath     string `yaml:"curation_path"     env:"CHEF_CURATION_PATH"`
	CommonCorePath   string `yaml:"common_core_path"  env:"CHEF_COMMON_CORE_PATH"`
	ChannelThumbnail string `yaml:"channel_thumbnail" env:"CHEF_CHANNEL_THUMBNAIL" env-default:"https://cdn.kastatic.org/images/khan-logo-vertical-transparent.png"`
	SourceDomain     string `yaml:"source_domain"     env:"CHEF_SOURCE_DOMAIN"     env-default:"khanacademy.org"`
	VideoSource      string `yaml:"video_source"      env:"CHEF_VIDEO_SOURCE"      env-default:"youtube"`
	Concurrency      int    `yaml:"concurrency"       env:"CHEF_CONCURRENCY"       env-default:"4"`
}

// VideoSources lists the accepted values of ChefConfig.VideoSource.
var VideoSources = []string{"youtube", "cdn"}
