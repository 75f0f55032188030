package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./betboard mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "betboard-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to betboard MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools                 - List available tools")
	fmt.Println("  /snapshot [refresh]    - Dump the raw snapshot")
	fmt.Println("  /exit                  - Exit the client")
	fmt.Println("  <tab> [sub-tab]        - Render a tab, e.g. 'mybets ended' or 'top month'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case strings.HasPrefix(input, "/snapshot"):
			callTool(ctx, session, "get_snapshot", map[string]any{
				"refresh": strings.HasSuffix(input, "refresh"),
			})

		default:
			callTool(ctx, session, "render_tab", renderArgs(strings.Fields(input)))
		}
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("Scanner error: %v", err)
	}
}

// renderArgs maps "<tab> [sub-tab]" onto render_tab arguments.
func renderArgs(parts []string) map[string]any {
	args := map[string]any{"tab": parts[0]}
	if len(parts) < 2 {
		return args
	}
	switch strings.ToLower(parts[0]) {
	case "mybets":
		args["mybets_sub_tab"] = parts[1]
	case "top":
		args["top_sub_tab"] = parts[1]
	}
	return args
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Errorf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Errorf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result:\n")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			// render_tab returns {"text": "..."}; show the rendering as-is.
			var rendered struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal([]byte(v.Text), &rendered); err == nil && rendered.Text != "" {
				fmt.Print(rendered.Text)
				continue
			}
			fmt.Println(v.Text)
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
