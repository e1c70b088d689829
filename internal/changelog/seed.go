package changelog

// Default returns the seed document used by the init workflow.
// It is a pure constructor; every call returns a fresh value.
func Default() *Changelog {
	return &Changelog{
		Title: "Changelog",
		Description: "All notable changes to this project will be documented in this file.\n" +
			"\n" +
			"The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),\n" +
			"and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).\n",
		Repository: "https://github.com/me/my-swanky-project",
		Unreleased: Changes{
			Added: []string{
				"Started using [changelog-md](https://github.com/changelog-md/changelog-md)",
			},
		},
		Versions: []Version{},
	}
}
