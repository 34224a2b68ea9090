package arclib

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

type InitCommandArguments struct {
	Host  string
	URL   string
	Token string
}

const defaultAPIURL = "http://localhost:4280"

func validateAPIURL(input string) error {
	parsed, err := url.Parse(input)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("you need a full url, like http://localhost:4280")
	}
	return nil
}

func InitCommand(arguments *InitCommandArguments) error {
	configFolder := ".arc"
	configFolder = filepath.Join("./", configFolder)
	configName := filepath.Join(configFolder, "config")

	fmt.Println()
	// In case config is in place ask the users if they want to rewrite it.
	// This will result to all contents be overridden.
	// If the answer is "no" we need to cancel everything.
	if _, err := os.Stat(configName); !os.IsNotExist(err) {
		fmt.Println("It seems that this project is already initialized in " +
			"this folder.")
		prompt := promptui.Prompt{
			Label:     "Do you want to delete it and reinit the project",
			IsConfirm: true,
		}

		_, err := prompt.Run()

		if err != nil {
			fmt.Println("Init was cancelled!")
			return nil
		}
	}

	apiURL := arguments.URL
	if apiURL == "" && arguments.Host == "" && isInteractive() {
		prompt := promptui.Prompt{
			Label:     "What is the url of the API?",
			Default:   defaultAPIURL,
			Templates: getInputTemplate("API url"),
			Validate:  validateAPIURL,
		}
		res, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				return err
			}
			return fmt.Errorf("something went wrong: %v", err)
		}
		apiURL = res
	}
	if apiURL == "" && arguments.Host == "" {
		apiURL = defaultAPIURL
	}

	// Create the .arc folder in the current path.
	// In case something goes wrong abort and return error.
	if _, err := os.Stat(configFolder); os.IsNotExist(err) {
		err := os.Mkdir(configFolder, 0755)
		if err != nil {
			return fmt.Errorf("we couldn't create a .arc folder: %w", err)
		}
	}

	// Try to create the config file
	_, err := os.Create(configName)
	if err != nil {
		return fmt.Errorf(
			"we couldn't create a CONFIG file inside the .arc directory: %w",
			err,
		)
	}

	// Add the required permissions to the file
	err = os.Chmod(configName, 0755)
	if err != nil {
		return fmt.Errorf(
			"we couldn't change permissions for the config file: %w", err,
		)
	}

	localCfg := config.LocalConfig{
		Path: configName,
		Host: arguments.Host,
		URL:  apiURL,
	}

	err = localCfg.Save()

	if err != nil {
		return fmt.Errorf("we could not add data to config: %w", err)
	}

	// A named host gets (or refreshes) its root configuration entry so the
	// url and token outlive this project.
	if arguments.Host != "" &&
		(arguments.URL != "" || arguments.Token != "") {
		err = saveRootHost(arguments.Host, arguments.URL, arguments.Token)
		if err != nil {
			return err
		}
	}

	// Everything is great! Continue!
	green := color.New(color.FgGreen).SprintFunc()
	msg := green(fmt.Sprintf("Successful creation of '%s' file", configName))

	fmt.Println(msg)
	return nil
}

func saveRootHost(name, apiURL, token string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Root == nil {
		rootPath, err := config.GetRootPath()
		if err != nil {
			return err
		}
		cfg.Root = &config.RootConfig{Path: rootPath}
	}

	host := cfg.FindHost(name)
	if host == nil {
		cfg.Root.Hosts = append(cfg.Root.Hosts, config.Host{Name: name})
		host = &cfg.Root.Hosts[len(cfg.Root.Hosts)-1]
	}
	if apiURL != "" {
		host.URL = apiURL
	}
	if token != "" {
		host.Token = token
	}
	return cfg.Save()
}
