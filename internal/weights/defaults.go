package weights

// defaultEntries is the built-in heuristic table. Child patterns (./ prefix)
// reward markers found directly inside a candidate, name patterns penalize
// directories that are almost never a project root themselves, and parent
// patterns (trailing slash, matched against each ancestor's name) penalize
// candidates buried under build or dependency trees.
var defaultEntries = []Entry{
	// Manifests that near-certainly mark a project root.
	{"./pyproject.toml", 40},
	{"./package.json", 40},
	{"./Cargo.toml", 40},
	{"./go.mod", 40},
	{"./composer.json", 30},
	{"./Gemfile", 30},
	{"./mix.exs", 30},

	// Version control.
	{"./.git", 30},
	{"./.hg", 10},
	{"./.svn", 10},

	// Python tooling, common enough to rank highly.
	{"./requirements.txt", 25},
	{"./Pipfile", 25},
	{"./poetry.lock", 25},
	{"./setup.py", 25},

	// Lockfiles and per-tool configs.
	{"./pnpm-lock.yaml", 15},
	{"./yarn.lock", 15},
	{"./package-lock.json", 15},
	{"./tsconfig.json", 10},
	{"./webpack.config.js", 10},
	{"./next.config.js", 10},
	{"./vite.config.js", 10},
	{"./vite.config.ts", 10},
	{"./angular.json", 10},

	// Infrastructure and dev tooling.
	{"./docker-compose.yml", 15},
	{"./Dockerfile", 10},
	{"./Makefile", 10},
	{"./.editorconfig", 5},

	// Generic project files.
	{"./.env", 10},
	{"./.env.local", 8},
	{"./.env.example", 8},
	{"./.gitignore", 5},
	{"./README", 5},
	{"./README.md", 5},
	{"./README.rst", 5},
	{"./LICENSE", 5},

	// Framework entrypoints, weak on their own.
	{"./manage.py", 5},

	// Conventional source and build directories as children.
	{"./src", 10},
	{"./dist", 10},
	{"./build", 10},
	{"./lib", 5},
	{"./app", 5},
	{"./server", 5},
	{"./client", 5},
	{"./backend", 5},
	{"./frontend", 5},
	{"./packages", 5},

	// Editor metadata, barely a signal.
	{"./.vscode", 2},
	{"./.idea", 2},

	// Directories that are themselves almost never the root.
	{"src", -100},
	{"dist", -100},
	{"bin", -100},
	{"lib", -100},
	{"site-packages", -100},
	{"assets", -100},
	{"build", -100},
	{"venv", -100},
	{".venv", -100},
	{"env", -80},
	{".env", -80},
	{"node_modules", -100},
	{"__pycache__", -100},
	{"", -100},

	// Ancestry penalties: being anywhere under these is a bad sign.
	{".venv/", -200},
	{"venv/", -200},
	{"node_modules/", -200},
	{"*env/", -100},
	{"__pycache__/", -150},
	{"*cache*/", -50},
	{"bin/", -100},
}

// Defaults returns a fresh Table holding the built-in heuristic weights.
func Defaults() *Table {
	t := NewTable()
	t.Apply(defaultEntries)
	return t
}
