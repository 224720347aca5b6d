package main

const streamhiveBanner = `
        _                            _     _
    ___| |_ _ __ ___  __ _ _ __ ___ | |__ (_)_   _____
   / __| __| '__/ _ \/ _` + "`" + ` | '_ ` + "`" + ` _ \| '_ \| \ \ / / _ \
   \__ \ |_| | |  __/ (_| | | | | | | | | | |\ V /  __/
   |___/\__|_|  \___|\__,_|_| |_| |_|_| |_|_| \_/ \___|

`
