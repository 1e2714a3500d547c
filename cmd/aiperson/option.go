package aiperson

// Options is the root command that groups sub-commands.  The struct tags are
// interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config    string `short:"f" long:"config" description:"config YAML path (default <workspace>/config.yaml)"`
	Workspace string `short:"w" long:"workspace" description:"workspace root (default $AIPERSON_WORKSPACE or ./.aiperson)"`
	Log       string `long:"log" description:"event log file (default <workspace>/aiperson.log)"`

	Menu    *MenuCmd    `command:"menu"    description:"Interactive menu (default)"`
	Create  *CreateCmd  `command:"create"  description:"Create an AI person"`
	List    *ListCmd    `command:"list"    description:"List AI persons"`
	Modify  *ModifyCmd  `command:"modify"  description:"Modify an AI person"`
	Delete  *DeleteCmd  `command:"delete"  description:"Delete an AI person"`
	Cache   *CacheCmd   `command:"cache"   description:"Save the model of an AI person locally"`
	Evict   *EvictCmd   `command:"evict"   description:"Remove the locally saved model of an AI person"`
	Chat    *ChatCmd    `command:"chat"    description:"Chat with an AI person"`
	Version *VersionCmd `command:"version" description:"Print version"`
}

// Init instantiates the sub-command referenced by the first argument so that
// flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "menu":
		o.Menu = &MenuCmd{}
	case "create":
		o.Create = &CreateCmd{}
	case "list":
		o.List = &ListCmd{}
	case "modify":
		o.Modify = &ModifyCmd{}
	case "delete":
		o.Delete = &DeleteCmd{}
	case "cache":
		o.Cache = &CacheCmd{}
	case "evict":
		o.Evict = &EvictCmd{}
	case "chat":
		o.Chat = &ChatCmd{}
	case "version":
		o.Version = &VersionCmd{}
	}
}
