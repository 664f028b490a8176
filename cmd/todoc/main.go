package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mdouchement/todoapp/internal/client"
	"github.com/mdouchement/todoapp/pkg/libtodo"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	endpoint string
)

func main() {
	c := &cobra.Command{
		Use:     "todoc",
		Short:   "Todo list client for todoapp server",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}
	c.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", defaultEndpoint(), "todoapp server endpoint")
	c.AddCommand(listCmd)
	c.AddCommand(addCmd)
	c.AddCommand(toggleCmd)
	c.AddCommand(rmCmd)
	c.AddCommand(boardCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func defaultEndpoint() string {
	if v := os.Getenv("TODOC_ENDPOINT"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all the todos",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			api, err := libtodo.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}

			todos, err := api.ListTodos()
			if err != nil {
				return err
			}

			for _, todo := range todos {
				checkbox := "[ ]"
				if todo.Completed {
					checkbox = "[x]"
				}
				fmt.Printf("%s %-36s %-6s %s\n", checkbox, todo.ID, todo.Priority, todo.Title)
			}
			return nil
		},
	}

	addCmd = &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a new todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			api, err := libtodo.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}

			todo, err := api.CreateTodo(libtodo.CreateParams{
				Title:    strings.Join(args, " "),
				Priority: "medium",
			})
			if err != nil {
				return err
			}

			fmt.Println(todo.ID)
			return nil
		},
	}

	toggleCmd = &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip the completed flag of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			api, err := libtodo.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}

			todo, err := api.GetTodo(args[0])
			if err != nil {
				return err
			}

			completed := !todo.Completed
			todo, err = api.UpdateTodo(args[0], libtodo.UpdateParams{Completed: &completed})
			if err != nil {
				return err
			}

			fmt.Printf("%s completed=%t\n", todo.ID, todo.Completed)
			return nil
		},
	}

	rmCmd = &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			api, err := libtodo.NewDefaultClient(endpoint)
			if err != nil {
				return err
			}

			return api.DeleteTodo(args[0])
		},
	}

	boardCmd = &cobra.Command{
		Use:   "board",
		Short: "Text-based todo application",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return client.Board(endpoint)
		},
	}
)
