package config

import "time"

func NewSlackForTest(token string) *Slack {
	return &Slack{token: token}
}

func NewSyncForTest(interval time.Duration, discoveryEvery int, tuningPath string) *Sync {
	return &Sync{
		interval:       interval,
		discoveryEvery: discoveryEvery,
		tuningPath:     tuningPath,
	}
}
