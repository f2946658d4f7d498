package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/spf13/cobra"

	transport "github.com/xiaot623/chatshare/internal/transport/http"
)

func newLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve the API as an AWS Lambda behind API Gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Clients live for the whole execution environment, across invocations.
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			adapter := echoadapter.New(transport.NewServer(a.service))
			lambda.Start(adapter.ProxyWithContext)
			return nil
		},
	}
}
